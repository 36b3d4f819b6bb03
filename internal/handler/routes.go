package handler

import (
	"go-storefront/internal/middleware"
	"go-storefront/internal/repository"
	"go-storefront/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every storefront route onto the app. The session
// resolver runs first so every handler sees the current identity.
func RegisterRoutes(
	app *fiber.App,
	users repository.UserRepository,
	tokens *token.Manager,
	auth *AuthHandler,
	catalog *CatalogHandler,
	stock *StockHandler,
	checkout *CheckoutHandler,
) {
	app.Use(middleware.CurrentUser(users, tokens))

	app.Get("/", catalog.Home)

	app.Get("/register", auth.Register)
	app.Post("/register", auth.Register)
	app.Get("/login", auth.Login)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)

	app.Get("/create-checkout_session/:id", checkout.CreateSession)
	app.Post("/create-checkout_session/:id", checkout.CreateSession)

	// Product detail is public; inventory management is not.
	app.Get("/stock/:id", catalog.ShowProduct)
	app.Post("/stock/:id", catalog.ShowProduct)

	admin := middleware.RequireAdmin()
	app.Get("/stock", admin, stock.AddStock)
	app.Post("/stock", admin, stock.AddStock)
	app.Get("/edit-stock/:id", admin, stock.EditStock)
	app.Post("/edit-stock/:id", admin, stock.EditStock)
	app.Get("/delete/:id", admin, stock.DeleteStock)
}
