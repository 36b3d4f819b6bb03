package middleware

import (
	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const userKey = "current_user"

// CurrentUser resolves the session cookie to a user record on every
// request. Requests without a valid session continue as anonymous; the
// user is re-fetched from the store each time so stale sessions for
// deleted accounts fall back to anonymous too.
func CurrentUser(users repository.UserRepository, tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(token.CookieName)
		if cookie == "" {
			return c.Next()
		}

		claims, err := tokens.Verify(cookie)
		if err != nil {
			return c.Next()
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			return c.Next()
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// UserFrom returns the authenticated user for the request, or nil.
func UserFrom(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userKey).(*model.User)
	return user
}

// IsAuthenticated reports whether the request carries a valid session
// that resolved to an existing user.
func IsAuthenticated(c *fiber.Ctx) bool {
	return UserFrom(c) != nil
}

// RequireAdmin short-circuits with 403 before the handler body runs.
// The response carries no body.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFrom(c)
		if user == nil || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).SendString("")
		}
		return c.Next()
	}
}
