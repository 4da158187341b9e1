package handler

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/model"
	"shopapi/internal/service"
)

type signUpRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=50"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=50"`
}

type authHandler struct {
	svc service.AuthService
}

// signUp godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signUpRequest true "Account"
// @Success 201 {object} envelope
// @Failure 409 {object} errorPayload
// @Router /auth/sign-up [post]
func (h *authHandler) signUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.SignUp(c.UserContext(), service.SignUpInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      model.Gender(req.Gender),
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "Account created, check your email for the verification code", u)
}

func (h *authHandler) verifyEmail(c *fiber.Ctx) error {
	var req verifyEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.VerifyEmail(c.UserContext(), req.Email, req.Code); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Email verified", nil)
}

func (h *authHandler) resendOTP(c *fiber.Ctx) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResendOTP(c.UserContext(), req.Email); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Verification code sent", nil)
}

// signIn godoc
// @Summary Exchange credentials for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signInRequest true "Credentials"
// @Success 200 {object} envelope
// @Failure 401 {object} errorPayload
// @Router /auth/sign-in [post]
func (h *authHandler) signIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	token, err := h.svc.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Signed in", fiber.Map{"token": token})
}

func (h *authHandler) forgotPassword(c *fiber.Ctx) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Reset code sent", nil)
}

func (h *authHandler) resetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResetPassword(c.UserContext(), req.Email, req.Code, req.NewPassword); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Password changed", nil)
}
