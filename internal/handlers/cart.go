package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/verda/internal/cart"
	"github.com/example/verda/internal/middleware"
)

// CartHandler exposes the session cart. Payload shapes are validated here,
// at the boundary, so only well-formed lines reach the aggregate.
type CartHandler struct {
	carts *cart.Store
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(carts *cart.Store) *CartHandler {
	return &CartHandler{carts: carts}
}

func cartPayload(c *cart.Cart) fiber.Map {
	return fiber.Map{
		"items":   c.Items(),
		"total":   c.Total(),
		"count":   c.Count(),
		"is_open": c.IsOpen(),
	}
}

// GetCart returns the current session cart.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{"success": true, "data": cartPayload(h.carts.Get(userID))})
}

type addItemRequest struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color"`
}

// AddItem merges a product into the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.ProductID) == "" || strings.TrimSpace(req.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_id and name are required")
	}
	if req.UnitPrice < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "unit_price must not be negative")
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	sessionCart := h.carts.Get(userID)
	sessionCart.Add(cart.Product{
		ID:    req.ProductID,
		Name:  req.Name,
		Price: req.UnitPrice,
		Image: req.Image,
	}, quantity, req.Color)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": cartPayload(sessionCart)})
}

type updateItemRequest struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// UpdateItem overwrites a line quantity. Zero or less removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
	}

	sessionCart := h.carts.Get(userID)
	sessionCart.SetQuantity(req.ProductID, req.Color, req.Quantity)

	return c.JSON(fiber.Map{"success": true, "data": cartPayload(sessionCart)})
}

type removeItemRequest struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color"`
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req removeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
	}

	sessionCart := h.carts.Get(userID)
	sessionCart.Remove(req.ProductID, req.Color)

	return c.JSON(fiber.Map{"success": true, "data": cartPayload(sessionCart)})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	sessionCart := h.carts.Get(userID)
	sessionCart.Clear()

	return c.JSON(fiber.Map{"success": true, "data": cartPayload(sessionCart)})
}

type drawerRequest struct {
	Open bool `json:"open"`
}

// SetDrawer toggles the cart drawer flag.
func (h *CartHandler) SetDrawer(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req drawerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	sessionCart := h.carts.Get(userID)
	sessionCart.SetOpen(req.Open)

	return c.JSON(fiber.Map{"success": true, "data": cartPayload(sessionCart)})
}
