package handler

import (
	"net/url"

	"go-storefront/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "storefront_flash"

// setFlash stores a one-shot message for the next rendered view.
func setFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// takeFlash reads and clears the pending flash message.
func takeFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// view builds the common response envelope: payload plus the identity
// context every page renders with.
func view(c *fiber.Ctx, payload fiber.Map) fiber.Map {
	payload["authenticated"] = middleware.IsAuthenticated(c)
	if user := middleware.UserFrom(c); user != nil {
		payload["current_user"] = user.ToResponse()
	}
	if flash := takeFlash(c); flash != "" {
		payload["flash"] = flash
	}
	return payload
}
