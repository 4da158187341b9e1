package handler

import "github.com/gofiber/fiber/v2"

// envelope is the success response body.
type envelope struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
	Data       any         `json:"data,omitempty"`
}

type pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

func newPagination(page, limit, total int) *pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &pagination{CurrentPage: page, TotalPages: pages, TotalItems: total}
}

func respond(c *fiber.Ctx, status int, msg string, data any) error {
	return c.Status(status).JSON(envelope{Status: "success", Message: msg, Data: data})
}

func respondList(c *fiber.Ctx, msg string, count int, data any) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Status: "success", Message: msg, Count: &count, Data: data})
}
