package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/verda/internal/cart"
	"github.com/example/verda/internal/checkout"
	"github.com/example/verda/internal/lifecycle"
	"github.com/example/verda/internal/middleware"
	"github.com/example/verda/internal/models"
	"github.com/example/verda/internal/orders"
	"github.com/example/verda/internal/services"
	"github.com/example/verda/internal/utils"
)

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	carts    *cart.Store
	telegram *services.TelegramService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, carts *cart.Store, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{db: db, carts: carts, telegram: telegram}
}

// Checkout returns the prefilled order draft for the current session.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	sessionCart := h.carts.Get(userID)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"draft": checkout.Resolve(&user),
			"items": sessionCart.Items(),
			"total": sessionCart.Total(),
		},
	})
}

type createOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
}

// CreateOrder validates the submission against the session cart, persists a
// frozen order snapshot and clears the cart. On persistence failure the
// cart is left untouched so the user can retry without re-entering items.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	sessionCart := h.carts.Get(userID)
	lines := sessionCart.Items()

	addr := checkout.Normalize(req.ShippingAddress)
	if err := checkout.ValidateSubmission(addr, len(lines)); err != nil {
		return err
	}

	order := orders.Build(orders.Customer{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, lines, addr)

	if err := h.db.Create(order).Error; err != nil {
		return err
	}

	sessionCart.Clear()

	if h.telegram != nil {
		go func(o models.Order) {
			if err := h.telegram.NotifyNewOrder(&o); err != nil {
				log.Printf("[Order] Telegram notification failed: %v", err)
			}
		}(*order)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    orders.NewView(order),
	})
}

// ListOrders returns the current user's orders, newest first, each
// decorated with the derived can_cancel flag.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("user_id = ?", userID).Model(&models.Order{})

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

	views := make([]orders.View, len(records))
	for i := range records {
		views[i] = orders.NewView(&records[i])
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

// GetOrder returns a single order for the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders.NewView(&order)})
}

// CancelOrder performs the guarded customer cancellation. Allowed only
// while the order is pending or confirmed; otherwise the order is left
// unchanged and a guard error is returned.
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if err := lifecycle.CustomerCancel(&order); err != nil {
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

	if h.telegram != nil {
		go func(o models.Order) {
			if err := h.telegram.NotifyOrderCancelled(&o); err != nil {
				log.Printf("[Order] Telegram notification failed: %v", err)
			}
		}(order)
	}

	return c.JSON(fiber.Map{"success": true, "data": orders.NewView(&order)})
}
