package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"resume-builder/internal/auth"
)

const localsEmail = "email"

// AuthMiddleware verifies the bearer token and stores the account email in
// the request locals. Verified tokens are cached briefly so hot clients do
// not re-verify on every request.
type AuthMiddleware struct {
	tokens *auth.TokenManager
	cache  *gocache.Cache
}

func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		cache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (m *AuthMiddleware) Require(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing bearer token"})
	}
	token := strings.TrimPrefix(header, "Bearer ")

	if email, ok := m.cache.Get(token); ok {
		c.Locals(localsEmail, email.(string))
		return c.Next()
	}

	email, err := m.tokens.Verify(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
	}
	m.cache.Set(token, email, gocache.DefaultExpiration)
	c.Locals(localsEmail, email)
	return c.Next()
}

func requestEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsEmail).(string); ok {
		return v
	}
	return ""
}
