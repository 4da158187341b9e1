package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"shopapi/internal/service"
)

type couponRequest struct {
	Name              string           `json:"name" validate:"required,min=3,max=100"`
	ExpireDate        time.Time        `json:"expireDate" validate:"required"`
	Discount          int              `json:"discount" validate:"required,min=1,max=100"`
	MinOrderValue     *decimal.Decimal `json:"minOrderValue"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	IsActive          *bool            `json:"isActive"`
	MaxUsage          *int             `json:"maxUsage" validate:"omitempty,min=1"`
}

type couponPatchRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=3,max=100"`
	ExpireDate        *time.Time       `json:"expireDate"`
	Discount          *int             `json:"discount"`
	MinOrderValue     *decimal.Decimal `json:"minOrderValue"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	IsActive          *bool            `json:"isActive"`
	MaxUsage          *int             `json:"maxUsage"`
}

type taxRequest struct {
	TaxPrice      *decimal.Decimal `json:"taxPrice"`
	ShippingPrice *decimal.Decimal `json:"shippingPrice"`
}

type couponHandler struct {
	svc service.CouponService
}

func (h *couponHandler) create(c *fiber.Ctx) error {
	var req couponRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), service.CouponInput{
		Name:              strings.TrimSpace(req.Name),
		ExpireDate:        req.ExpireDate,
		Discount:          req.Discount,
		MinOrderValue:     req.MinOrderValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		IsActive:          req.IsActive,
		MaxUsage:          req.MaxUsage,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Coupon created", out)
}

func (h *couponHandler) list(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respondList(c, "Coupons", len(out), out)
}

func (h *couponHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Coupon", out)
}

func (h *couponHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req couponPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, service.CouponPatch{
		Name:              req.Name,
		ExpireDate:        req.ExpireDate,
		Discount:          req.Discount,
		MinOrderValue:     req.MinOrderValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		IsActive:          req.IsActive,
		MaxUsage:          req.MaxUsage,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Coupon updated", out)
}

func (h *couponHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type taxHandler struct {
	svc service.TaxService
}

func (h *taxHandler) save(c *fiber.Ctx) error {
	var req taxRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, created, err := h.svc.Save(c.UserContext(), service.TaxInput{TaxPrice: req.TaxPrice, ShippingPrice: req.ShippingPrice})
	if err != nil {
		return err
	}
	if created {
		return respond(c, fiber.StatusCreated, "Tax settings created", out)
	}
	return respond(c, fiber.StatusOK, "Tax settings updated", out)
}

func (h *taxHandler) get(c *fiber.Ctx) error {
	out, isDefault, err := h.svc.Get(c.UserContext())
	if err != nil {
		return err
	}
	msg := "Tax settings"
	if isDefault {
		msg = "No tax settings saved, using defaults"
	}
	return respond(c, fiber.StatusOK, msg, out)
}

func (h *taxHandler) reset(c *fiber.Ctx) error {
	out, err := h.svc.Reset(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Tax settings reset", out)
}
