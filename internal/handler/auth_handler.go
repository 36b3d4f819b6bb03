package handler

import (
	"errors"
	"time"

	"go-storefront/internal/form"
	"go-storefront/internal/model"
	"go-storefront/internal/service"
	"go-storefront/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	authService service.AuthService
	tokens      *token.Manager
}

func NewAuthHandler(authService service.AuthService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// Register handles GET (empty form) and POST (submit) on /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(view(c, fiber.Map{"form": form.RegisterForm{}}))
	}

	f, errs := form.BindRegister(c)
	if errs.Any() {
		return c.Status(fiber.StatusBadRequest).JSON(view(c, fiber.Map{
			"form":   f,
			"errors": errs,
		}))
	}

	user, err := h.authService.Register(f.Email, f.Password, f.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			setFlash(c, "That email address has already been used. Try again.")
			return c.Redirect("/register")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	if err := h.logIn(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Redirect("/")
}

// Login handles GET (empty form) and POST (submit) on /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(view(c, fiber.Map{"form": form.LoginForm{}}))
	}

	f, errs := form.BindLogin(c)
	if errs.Any() {
		return c.Status(fiber.StatusBadRequest).JSON(view(c, fiber.Map{
			"form":   f,
			"errors": errs,
		}))
	}

	user, err := h.authService.Login(f.Email, f.Password)
	if err != nil {
		// Same flash whether the email was unknown or the password wrong.
		setFlash(c, "Incorrect")
		return c.Redirect("/login")
	}

	if err := h.logIn(c, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Redirect("/")
}

// Logout unconditionally clears the session and sends the visitor home
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/")
}

func (h *AuthHandler) logIn(c *fiber.Ctx, user *model.User) error {
	t, err := h.tokens.Issue(user.ID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    t,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return nil
}
