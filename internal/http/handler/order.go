package handler

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/http/middleware"
	"shopapi/internal/model"
	"shopapi/internal/service"
)

type createOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethodType" validate:"omitempty,oneof=cash card"`
}

type markPaidRequest struct {
	ID           string `json:"id" validate:"required"`
	Status       string `json:"status" validate:"required"`
	EmailAddress string `json:"email_address" validate:"omitempty,email"`
}

type orderHandler struct {
	svc service.OrderService
}

// create godoc
// @Summary Place an order from the caller's cart
// @Tags order
// @Accept json
// @Produce json
// @Param body body createOrderRequest false "Shipping and payment"
// @Success 201 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Security BearerAuth
// @Router /order [post]
func (h *orderHandler) create(c *fiber.Ctx) error {
	var req createOrderRequest
	if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}
	out, err := h.svc.Create(c.UserContext(), middleware.ClaimsFrom(c).UserID(), service.CreateOrderInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Order created", out)
}

func (h *orderHandler) listMine(c *fiber.Ctx) error {
	out, err := h.svc.ListMine(c.UserContext(), middleware.ClaimsFrom(c).UserID())
	if err != nil {
		return err
	}
	return respondList(c, "Orders", len(out), out)
}

func (h *orderHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	claims := middleware.ClaimsFrom(c)
	out, err := h.svc.Get(c.UserContext(), claims.UserID(), claims.Role, id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order", out)
}

// adminList godoc
// @Summary List all orders
// @Tags order
// @Produce json
// @Param isPaid query bool false "Paid filter"
// @Param isDelivered query bool false "Delivered filter"
// @Param isCanceled query bool false "Canceled filter"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} envelope
// @Security BearerAuth
// @Router /order/admin/all [get]
func (h *orderHandler) adminList(c *fiber.Ctx) error {
	page, err := positiveQuery(c, "page")
	if err != nil {
		return err
	}
	limit, err := positiveQuery(c, "limit")
	if err != nil {
		return err
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	q := service.OrderQuery{
		IsPaid:      boolQuery(c, "isPaid"),
		IsDelivered: boolQuery(c, "isDelivered"),
		IsCanceled:  boolQuery(c, "isCanceled"),
		Page:        page,
		Limit:       limit,
	}
	res, err := h.svc.AdminList(c.UserContext(), q)
	if err != nil {
		return err
	}
	count := len(res.Items)
	return c.Status(fiber.StatusOK).JSON(envelope{
		Status:     "success",
		Message:    "Orders",
		Count:      &count,
		Pagination: newPagination(page, limit, res.Total),
		Data:       res.Items,
	})
}

func (h *orderHandler) stats(c *fiber.Ctx) error {
	out, err := h.svc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order statistics", out)
}

func (h *orderHandler) markDelivered(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.MarkDelivered(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order delivered", out)
}

func (h *orderHandler) markPaid(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req markPaidRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.MarkPaid(c.UserContext(), id, service.PaymentInput{
		ID:           req.ID,
		Status:       req.Status,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order paid", out)
}

func (h *orderHandler) cancel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Cancel(c.UserContext(), middleware.ClaimsFrom(c).UserID(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Order canceled", out)
}

// boolQuery reads a filter flag. Only "true" and "false" count; anything else
// leaves the filter unset.
func boolQuery(c *fiber.Ctx, name string) *bool {
	var v bool
	switch c.Query(name) {
	case "true":
		v = true
	case "false":
	default:
		return nil
	}
	return &v
}
