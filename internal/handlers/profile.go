package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/verda/internal/checkout"
	"github.com/example/verda/internal/middleware"
	"github.com/example/verda/internal/models"
)

// ProfileHandler manages the reusable shipping profile. The profile copy of
// the address is mutable; order snapshots taken from it never change.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func profilePayload(user *models.User) fiber.Map {
	addr := user.ShippingAddress
	if addr.Country == "" {
		addr.Country = models.DefaultCountry
	}
	return fiber.Map{
		"id":               user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"shipping_address": addr,
	}
}

// GetProfile returns the authenticated user's profile with the saved
// shipping address.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": profilePayload(&user)})
}

type updateProfileRequest struct {
	Name            string                  `json:"name"`
	ShippingAddress *models.ShippingAddress `json:"shipping_address"`
}

// UpdateProfile updates the display name and/or the saved shipping address.
// A submitted address must be complete; it is validated with the same rules
// checkout applies.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}

	if req.ShippingAddress != nil {
		addr := checkout.Normalize(*req.ShippingAddress)
		if err := checkout.ValidateAddress(addr); err != nil {
			return err
		}
		updates["shipping_full_name"] = addr.FullName
		updates["shipping_address"] = addr.Address
		updates["shipping_city"] = addr.City
		updates["shipping_state"] = addr.State
		updates["shipping_zip_code"] = addr.ZipCode
		updates["shipping_country"] = addr.Country
		updates["shipping_phone"] = addr.Phone
	}

	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}
	updates["updated_at"] = time.Now()

	result := h.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "profile updated",
		"data":    profilePayload(&user),
	})
}
