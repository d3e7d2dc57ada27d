// Package mw contains HTTP middleware including authentication and rate limiting.
package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthContext holds authentication details extracted from the bearer token.
type AuthContext struct {
	Subject string // user:<uuid>
	Kind    string // user
	Roles   []string
}

// TokenParser parses a token string and returns subject, kind, roles.
type TokenParser func(token string) (string, string, []string, error)

// JWTMiddleware attaches auth context parsed by the given token parser.
// A missing or unparsable token simply leaves the context unset;
// RequireUser decides whether that is fatal for a route.
func JWTMiddleware(parse TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return c.Next()
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, kind, roles, err := parse(token)
		if err == nil && sub != "" {
			c.Locals("auth", &AuthContext{Subject: sub, Kind: kind, Roles: roles})
		}
		return c.Next()
	}
}

// RequireUser enforces an authenticated user (kind=user).
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*AuthContext)
		if ac == nil || ac.Kind != "user" || ac.Subject == "" {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}
