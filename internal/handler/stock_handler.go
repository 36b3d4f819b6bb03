package handler

import (
	"errors"

	"go-storefront/internal/form"
	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StockHandler covers the admin-only inventory routes.
type StockHandler struct {
	catalogService service.CatalogService
}

func NewStockHandler(catalogService service.CatalogService) *StockHandler {
	return &StockHandler{catalogService: catalogService}
}

// AddStock handles GET (empty form) and POST (submit) on /stock.
// A successful submit redirects back to the form so the admin can keep
// entering stock.
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(view(c, fiber.Map{"form": form.ProductForm{}}))
	}

	f, errs := form.BindProduct(c)
	if errs.Any() {
		return c.Status(fiber.StatusBadRequest).JSON(view(c, fiber.Map{
			"form":   f,
			"errors": errs,
		}))
	}

	if err := h.catalogService.AddProduct(f.ToModel()); err != nil {
		if errors.Is(err, service.ErrProductExists) {
			setFlash(c, "That product code or name is already in use.")
			return c.Redirect("/stock")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Redirect("/stock")
}

// EditStock prefills the product form on GET and overwrites every field
// on POST. GET|POST /edit-stock/:id
func (h *StockHandler) EditStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if c.Method() != fiber.MethodPost {
		product, err := h.catalogService.GetProduct(uint(id))
		if err != nil {
			if errors.Is(err, service.ErrProductNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(view(c, fiber.Map{
			"form":    form.FromProduct(product),
			"is_edit": true,
		}))
	}

	f, errs := form.BindProduct(c)
	if errs.Any() {
		return c.Status(fiber.StatusBadRequest).JSON(view(c, fiber.Map{
			"form":    f,
			"errors":  errs,
			"is_edit": true,
		}))
	}

	if _, err := h.catalogService.EditProduct(uint(id), f.ToModel()); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		case errors.Is(err, service.ErrProductExists):
			setFlash(c, "That product code or name is already in use.")
			return c.Redirect("/edit-stock/" + c.Params("id"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Redirect("/")
}

// DeleteStock removes the product and sends the admin home. The delete
// is idempotent; no confirmation step exists. GET /delete/:id
func (h *StockHandler) DeleteStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.catalogService.DeleteProduct(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Redirect("/")
}
