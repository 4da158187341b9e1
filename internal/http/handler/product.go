package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopapi/internal/model"
	"shopapi/internal/service"
)

type productRequest struct {
	Title              string           `json:"title" validate:"required,min=3"`
	Description        string           `json:"description" validate:"required,min=20"`
	Quantity           int              `json:"quantity" validate:"min=0"`
	Price              decimal.Decimal  `json:"price"`
	PriceAfterDiscount *decimal.Decimal `json:"priceAfterDiscount"`
	Colors             []string         `json:"colors"`
	ImageCover         string           `json:"imageCover" validate:"required"`
	Images             []string         `json:"images"`
	Category           string           `json:"category" validate:"required,uuid"`
	SubCategory        string           `json:"subCategory" validate:"required,uuid"`
	Brand              *string          `json:"brand" validate:"omitempty,uuid"`
	Supplier           *string          `json:"supplier" validate:"omitempty,uuid"`
	RatingsAverage     *float64         `json:"ratingsAverage" validate:"omitempty,min=0,max=5"`
	RatingsQuantity    *int             `json:"ratingsQuantity" validate:"omitempty,min=0"`
}

type productPatchRequest struct {
	Title              *string          `json:"title" validate:"omitempty,min=3"`
	Description        *string          `json:"description" validate:"omitempty,min=20"`
	Quantity           *int             `json:"quantity" validate:"omitempty,min=0"`
	Price              *decimal.Decimal `json:"price"`
	PriceAfterDiscount *decimal.Decimal `json:"priceAfterDiscount"`
	Colors             []string         `json:"colors"`
	ImageCover         *string          `json:"imageCover"`
	Images             []string         `json:"images"`
	Category           *string          `json:"category" validate:"omitempty,uuid"`
	SubCategory        *string          `json:"subCategory" validate:"omitempty,uuid"`
	Brand              *string          `json:"brand" validate:"omitempty,uuid"`
	Supplier           *string          `json:"supplier" validate:"omitempty,uuid"`
	RatingsAverage     *float64         `json:"ratingsAverage" validate:"omitempty,min=0,max=5"`
	RatingsQuantity    *int             `json:"ratingsQuantity" validate:"omitempty,min=0"`
}

type productHandler struct {
	svc service.ProductService
}

func (h *productHandler) create(c *fiber.Ctx) error {
	var req productRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), service.ProductInput{
		Title:              req.Title,
		Description:        req.Description,
		Quantity:           req.Quantity,
		Price:              req.Price,
		PriceAfterDiscount: req.PriceAfterDiscount,
		Colors:             req.Colors,
		ImageCover:         req.ImageCover,
		Images:             req.Images,
		CategoryID:         req.Category,
		SubCategoryID:      req.SubCategory,
		BrandID:            req.Brand,
		SupplierID:         req.Supplier,
		RatingsAverage:     req.RatingsAverage,
		RatingsQuantity:    req.RatingsQuantity,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Product created", out)
}

// list godoc
// @Summary List products
// @Tags product
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(5)
// @Param sort query string false "asc or desc by title"
// @Param keyword query string false "Search in title and description"
// @Param category query string false "Category id"
// @Param fields query string false "Comma-separated response fields"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Router /product [get]
func (h *productHandler) list(c *fiber.Ctx) error {
	page, err := positiveQuery(c, "page")
	if err != nil {
		return err
	}
	limit, err := positiveQuery(c, "limit")
	if err != nil {
		return err
	}
	category := c.Query("category")
	if category != "" {
		if _, err := uuid.Parse(category); err != nil {
			return errInvalidID
		}
	}
	ranges, err := service.ParseRanges(c.Queries())
	if err != nil {
		return err
	}

	res, err := h.svc.List(c.UserContext(), service.ProductQuery{
		Page:       page,
		Limit:      limit,
		Sort:       c.Query("sort"),
		Keyword:    c.Query("keyword"),
		CategoryID: category,
		Ranges:     ranges,
	})
	if err != nil {
		return err
	}

	if fields := c.Query("fields"); fields != "" {
		projected, err := project(res.Items, fields)
		if err != nil {
			return err
		}
		return respondList(c, "Products", res.Total, projected)
	}
	return respondList(c, "Products", res.Total, res.Items)
}

func (h *productHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product", out)
}

func (h *productHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req productPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, service.ProductPatch{
		Title:              req.Title,
		Description:        req.Description,
		Quantity:           req.Quantity,
		Price:              req.Price,
		PriceAfterDiscount: req.PriceAfterDiscount,
		Colors:             req.Colors,
		ImageCover:         req.ImageCover,
		Images:             req.Images,
		CategoryID:         req.Category,
		SubCategoryID:      req.SubCategory,
		BrandID:            req.Brand,
		SupplierID:         req.Supplier,
		RatingsAverage:     req.RatingsAverage,
		RatingsQuantity:    req.RatingsQuantity,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product updated", out)
}

func (h *productHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// uploadImage godoc
// @Summary Upload a product image
// @Tags product
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product id"
// @Param file formData file true "Image"
// @Param cover formData bool false "Replace the cover image"
// @Success 201 {object} envelope
// @Failure 400 {object} errorPayload
// @Security BearerAuth
// @Router /product/{id}/images [post]
func (h *productHandler) uploadImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest("file is required")
	}
	cover, err := strconv.ParseBool(c.FormValue("cover", "false"))
	if err != nil {
		return badRequest("cover must be true or false")
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest("cannot open uploaded file")
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	res, err := h.svc.UploadImage(c.UserContext(), id, service.ImageUpload{
		Body:        f,
		Filename:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
		Cover:       cover,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Image uploaded", fiber.Map{
		"product": res.Product,
		"key":     res.Key,
		"url":     res.URL,
	})
}

// positiveQuery parses an optional positive integer query parameter. Zero
// means absent.
func positiveQuery(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, badRequest(name + " must be a positive integer")
	}
	return n, nil
}

// project keeps only the requested JSON fields of each product. id is always kept.
func project(items []model.Product, fields string) ([]map[string]any, error) {
	keep := map[string]bool{"id": true}
	for _, f := range strings.Split(fields, ",") {
		if f = strings.TrimSpace(f); f != "" {
			keep[f] = true
		}
	}

	out := make([]map[string]any, 0, len(items))
	for _, p := range items {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		var full map[string]any
		if err := json.Unmarshal(raw, &full); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(keep))
		for k, v := range full {
			if keep[k] {
				m[k] = v
			}
		}
		out = append(out, m)
	}
	return out, nil
}
