package handler

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/service"
)

type categoryRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=30"`
	Image string `json:"image" validate:"omitempty,url"`
}

type categoryPatchRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=30"`
	Image *string `json:"image" validate:"omitempty,url"`
}

type subCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Category string `json:"category" validate:"required,uuid"`
}

type subCategoryPatchRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=30"`
	Category *string `json:"category" validate:"omitempty,uuid"`
}

type brandRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=100"`
	Image string `json:"image" validate:"omitempty,url"`
}

type brandPatchRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=100"`
	Image *string `json:"image" validate:"omitempty,url"`
}

type supplierRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=100"`
	Website string `json:"website" validate:"omitempty,url"`
}

type supplierPatchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=3,max=100"`
	Website *string `json:"website" validate:"omitempty,url"`
}

type categoryHandler struct {
	svc service.CategoryService
}

// create godoc
// @Summary Create a category
// @Tags category
// @Accept json
// @Produce json
// @Param body body categoryRequest true "Category"
// @Success 201 {object} envelope
// @Failure 400 {object} errorPayload
// @Security BearerAuth
// @Router /category [post]
func (h *categoryHandler) create(c *fiber.Ctx) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), service.CategoryInput{Name: req.Name, Image: req.Image})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Category created", out)
}

func (h *categoryHandler) list(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respondList(c, "Categories", len(out), out)
}

func (h *categoryHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Category", out)
}

func (h *categoryHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req categoryPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, service.CategoryPatch{Name: req.Name, Image: req.Image})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Category updated", out)
}

func (h *categoryHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type subCategoryHandler struct {
	svc service.SubCategoryService
}

func (h *subCategoryHandler) create(c *fiber.Ctx) error {
	var req subCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), service.SubCategoryInput{Name: req.Name, CategoryID: req.Category})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "SubCategory created", out)
}

func (h *subCategoryHandler) list(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respondList(c, "SubCategories", len(out), out)
}

func (h *subCategoryHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "SubCategory", out)
}

func (h *subCategoryHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req subCategoryPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, service.SubCategoryPatch{Name: req.Name, CategoryID: req.Category})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "SubCategory updated", out)
}

func (h *subCategoryHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type brandHandler struct {
	svc service.BrandService
}

func (h *brandHandler) create(c *fiber.Ctx) error {
	var req brandRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), service.BrandInput{Name: req.Name, Image: req.Image})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Brand created", out)
}

func (h *brandHandler) list(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respondList(c, "Brands", len(out), out)
}

func (h *brandHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Brand", out)
}

func (h *brandHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req brandPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, service.BrandPatch{Name: req.Name, Image: req.Image})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Brand updated", out)
}

func (h *brandHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type supplierHandler struct {
	svc service.SupplierService
}

func (h *supplierHandler) create(c *fiber.Ctx) error {
	var req supplierRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), service.SupplierInput{Name: req.Name, Website: req.Website})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Supplier created", out)
}

func (h *supplierHandler) list(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respondList(c, "Suppliers", len(out), out)
}

func (h *supplierHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Supplier", out)
}

func (h *supplierHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req supplierPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, service.SupplierPatch{Name: req.Name, Website: req.Website})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Supplier updated", out)
}

func (h *supplierHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
