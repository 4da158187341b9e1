package handler

import (
	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shopapi/internal/http/middleware"
	"shopapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// apiError is a transport-level failure with a fixed status and code.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string { return e.Message }

var errInvalidID = &apiError{Status: fiber.StatusBadRequest, Code: "INVALID_ID", Message: "invalid id format"}

func badRequest(msg string) error {
	return &apiError{Status: fiber.StatusBadRequest, Code: "BAD_REQUEST", Message: msg}
}

// writeError writes a standardized JSON error response. message must be safe
// to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

var kindStatus = map[service.Kind]struct {
	status int
	code   string
}{
	service.KindInvalid:      {fiber.StatusBadRequest, "BAD_REQUEST"},
	service.KindNotFound:     {fiber.StatusNotFound, "NOT_FOUND"},
	service.KindConflict:     {fiber.StatusConflict, "CONFLICT"},
	service.KindUnauthorized: {fiber.StatusUnauthorized, "UNAUTHORIZED"},
	service.KindForbidden:    {fiber.StatusForbidden, "FORBIDDEN"},
}

// ErrorHandler returns the Fiber global error handler. Service and transport
// errors keep their message; anything else is logged and reported as 500.
func ErrorHandler(lg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			ae *apiError
			se *service.Error
			fe *fiber.Error
		)
		switch {
		case errors.As(err, &ae):
			return writeError(c, ae.Status, ae.Code, ae.Message)
		case errors.As(err, &se):
			if m, ok := kindStatus[se.Kind]; ok {
				return writeError(c, m.status, m.code, se.Msg)
			}
		case errors.As(err, &fe):
			if status, code, msg, ok := fiberError(fe); ok {
				return writeError(c, status, code, msg)
			}
		}

		lg.Error("request_failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func fiberError(fe *fiber.Error) (int, string, string, bool) {
	switch fe.Code {
	case fiber.StatusBadRequest:
		return fe.Code, "BAD_REQUEST", "bad request", true
	case fiber.StatusUnauthorized:
		return fe.Code, "UNAUTHORIZED", fe.Message, true
	case fiber.StatusForbidden:
		return fe.Code, "FORBIDDEN", fe.Message, true
	case fiber.StatusNotFound:
		return fe.Code, "NOT_FOUND", "resource not found", true
	case fiber.StatusMethodNotAllowed:
		return fe.Code, "METHOD_NOT_ALLOWED", "method not allowed", true
	case fiber.StatusRequestEntityTooLarge:
		return fe.Code, "PAYLOAD_TOO_LARGE", "request body too large", true
	case fiber.StatusTooManyRequests:
		return fe.Code, "TOO_MANY_REQUESTS", fe.Message, true
	case fiber.StatusServiceUnavailable:
		return fe.Code, "SERVICE_UNAVAILABLE", "dependency unavailable", true
	}
	return 0, "", "", false
}
