package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopapi/internal/model"
	"shopapi/internal/security"
)

// ClaimsLocalKey is the Fiber locals key holding *security.Claims.
const ClaimsLocalKey = "claims"

// Auth requires a valid bearer token and stores its claims in locals.
func Auth(tokens *security.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "You are not logged in, please log in to get access")
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// RequireRoles allows only callers whose token role is one of roles. It must
// run after Auth.
func RequireRoles(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "You are not logged in, please log in to get access")
		}
		for _, r := range roles {
			if claims.Role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "You are not allowed to access this route")
	}
}

// ClaimsFrom returns the claims stored by Auth, or nil.
func ClaimsFrom(c *fiber.Ctx) *security.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*security.Claims)
	return claims
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
