package handler

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/http/middleware"
	"shopapi/internal/service"
)

type addItemRequest struct {
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	Color    string `json:"color"`
}

type updateItemRequest struct {
	Quantity *int    `json:"quantity" validate:"omitempty,min=1"`
	Color    *string `json:"color"`
}

type applyCouponRequest struct {
	Name string `json:"name" validate:"required"`
}

type cartHandler struct {
	svc service.CartService
}

// addItem godoc
// @Summary Add a product to the caller's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product id"
// @Param body body addItemRequest false "Quantity and color"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Security BearerAuth
// @Router /cart/{productId} [post]
func (h *cartHandler) addItem(c *fiber.Ctx) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}
	var req addItemRequest
	if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}
	out, err := h.svc.AddItem(c.UserContext(), middleware.ClaimsFrom(c).UserID(), productID, service.AddItemInput{
		Quantity: req.Quantity,
		Color:    req.Color,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product added to cart", out)
}

func (h *cartHandler) get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), middleware.ClaimsFrom(c).UserID())
	if err != nil {
		return err
	}
	return respondList(c, "Cart", len(out.Items), out)
}

func (h *cartHandler) updateItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return err
	}
	var req updateItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.UpdateItem(c.UserContext(), middleware.ClaimsFrom(c).UserID(), itemID, service.UpdateItemInput{
		Quantity: req.Quantity,
		Color:    req.Color,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Cart item updated", out)
}

func (h *cartHandler) removeItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return err
	}
	out, err := h.svc.RemoveItem(c.UserContext(), middleware.ClaimsFrom(c).UserID(), itemID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Cart item removed", out)
}

func (h *cartHandler) clear(c *fiber.Ctx) error {
	out, err := h.svc.Clear(c.UserContext(), middleware.ClaimsFrom(c).UserID())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Cart cleared", out)
}

func (h *cartHandler) applyCoupon(c *fiber.Ctx) error {
	var req applyCouponRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.ApplyCoupon(c.UserContext(), middleware.ClaimsFrom(c).UserID(), req.Name)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Coupon applied", out)
}
