package handler

import (
	"errors"

	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateSession starts a gateway checkout and 303s the customer to the
// hosted payment page. GET|POST /create-checkout_session/:id
func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	url, err := h.checkoutService.CreateSession(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		case errors.Is(err, service.ErrCheckoutFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Checkout is temporarily unavailable. Try again later.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.Redirect(url, fiber.StatusSeeOther)
}
