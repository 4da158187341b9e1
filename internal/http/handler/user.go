package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shopapi/internal/http/middleware"
	"shopapi/internal/model"
	"shopapi/internal/service"
)

type createUserRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=50"`
	Role        string `json:"role" validate:"omitempty,oneof=user admin"`
	Avatar      string `json:"avatar" validate:"omitempty,url"`
	Age         *int   `json:"age" validate:"omitempty,min=0"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female"`
}

type updateUserRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=6,max=50"`
	Role        *string `json:"role" validate:"omitempty,oneof=user admin"`
	Avatar      *string `json:"avatar" validate:"omitempty,url"`
	Age         *int    `json:"age" validate:"omitempty,min=0"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	Active      *bool   `json:"active"`
}

// updateProfileRequest has no role, active or email: those are admin-only.
type updateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=30"`
	Password    *string `json:"password" validate:"omitempty,min=6,max=50"`
	Avatar      *string `json:"avatar" validate:"omitempty,url"`
	Age         *int    `json:"age" validate:"omitempty,min=0"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
}

type userHandler struct {
	svc service.UserService
}

func (h *userHandler) create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.Create(c.UserContext(), service.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        model.Role(req.Role),
		Avatar:      req.Avatar,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      model.Gender(req.Gender),
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "User created", u)
}

// list godoc
// @Summary List users
// @Tags user
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param skip query int false "Offset" default(0)
// @Param sort query string false "asc or desc by name"
// @Success 200 {object} envelope
// @Security BearerAuth
// @Router /user [get]
func (h *userHandler) list(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return badRequest("invalid limit")
	}
	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		return badRequest("invalid skip")
	}
	desc, err := sortDesc(c.Query("sort"))
	if err != nil {
		return err
	}

	page, err := h.svc.List(c.UserContext(), service.UserQuery{
		Name:     c.Query("name"),
		Email:    c.Query("email"),
		Role:     model.Role(c.Query("role")),
		SortDesc: desc,
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		return err
	}
	return respondList(c, "Users", page.Total, page.Items)
}

func (h *userHandler) get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	u, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User", u)
}

func (h *userHandler) update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in := service.UpdateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Avatar:      req.Avatar,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Active:      req.Active,
	}
	if req.Role != nil {
		r := model.Role(*req.Role)
		in.Role = &r
	}
	in.Gender = genderPtr(req.Gender)

	u, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User updated", u)
}

func (h *userHandler) delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *userHandler) me(c *fiber.Ctx) error {
	u, err := h.svc.Get(c.UserContext(), middleware.ClaimsFrom(c).UserID())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Profile", u)
}

func (h *userHandler) updateMe(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.UpdateProfile(c.UserContext(), middleware.ClaimsFrom(c).UserID(), service.UpdateProfileInput{
		Name:        req.Name,
		Password:    req.Password,
		Avatar:      req.Avatar,
		Age:         req.Age,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      genderPtr(req.Gender),
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Profile updated", u)
}

func (h *userHandler) deleteMe(c *fiber.Ctx) error {
	if err := h.svc.Deactivate(c.UserContext(), middleware.ClaimsFrom(c).UserID()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func genderPtr(s *string) *model.Gender {
	if s == nil {
		return nil
	}
	g := model.Gender(*s)
	return &g
}

// sortDesc parses an asc|desc sort parameter. Empty means ascending.
func sortDesc(v string) (bool, error) {
	switch v {
	case "", "asc":
		return false, nil
	case "desc":
		return true, nil
	}
	return false, badRequest("sort must be asc or desc")
}
