package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/verda/internal/lifecycle"
	"github.com/example/verda/internal/models"
	"github.com/example/verda/internal/orders"
	"github.com/example/verda/internal/utils"
)

// AdminHandler manages staff-only endpoints.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListAllOrders returns orders across all customers with pagination, an
// optional status filter and free-text search. The search runs over the
// fetched page, not in SQL, matching order number, customer name/email and
// shipping phone.
func (h *AdminHandler) ListAllOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var records []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&records).Error; err != nil {
		return err
	}

	search := c.Query("search")
	views := make([]orders.StaffView, 0, len(records))
	for i := range records {
		if !orders.MatchesSearch(&records[i], search) {
			continue
		}
		views = append(views, orders.NewStaffView(&records[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    views,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus performs the unconstrained staff assignment: any of the
// five statuses, at any time, backward moves included. Only the status
// value itself is validated.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var order models.Order
	if err := h.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if err := lifecycle.StaffAssign(&order, req.Status); err != nil {
		return err
	}

	order.UpdatedAt = time.Now()
	if err := h.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"updated_at": order.UpdatedAt,
		}).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders.NewStaffView(&order)})
}

// ListAllUsers returns registered users with pagination, search and order
// statistics.
func (h *AdminHandler) ListAllUsers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		query = query.Where(
			"name ILIKE ? OR email ILIKE ?",
			"%"+search+"%", "%"+search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	// Select specific fields to avoid exposing password hashes
	var users []models.User
	if err := query.Select("id, name, email, is_admin, created_at, updated_at").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	type userStats struct {
		UserID     string  `json:"user_id"`
		OrderCount int64   `json:"order_count"`
		TotalSpent float64 `json:"total_spent"`
	}

	var stats []userStats
	h.db.Model(&models.Order{}).
		Select("user_id, count(*) as order_count, COALESCE(SUM(total_amount), 0) as total_spent").
		Group("user_id").
		Scan(&stats)

	statsMap := make(map[string]userStats)
	for _, s := range stats {
		statsMap[s.UserID] = s
	}

	type userResponse struct {
		models.User
		OrderCount int64   `json:"order_count"`
		TotalSpent float64 `json:"total_spent"`
	}

	result := make([]userResponse, len(users))
	for i, u := range users {
		result[i] = userResponse{User: u}
		if s, ok := statsMap[u.ID.String()]; ok {
			result[i].OrderCount = s.OrderCount
			result[i].TotalSpent = s.TotalSpent
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// ListUserOrders returns one customer's orders for the staff surface. The
// user reference may arrive raw or stringified.
func (h *AdminHandler) ListUserOrders(c *fiber.Ctx) error {
	userRef, err := orders.ParseUserRef(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("user_id = ?", userRef).Model(&models.Order{})

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var records []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&records).Error; err != nil {
		return err
	}

	views := make([]orders.StaffView, len(records))
	for i := range records {
		views[i] = orders.NewStaffView(&records[i])
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    views,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
