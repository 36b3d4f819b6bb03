package form

import (
	"strconv"
	"strings"

	"go-storefront/internal/model"

	"github.com/gofiber/fiber/v2"
)

type RegisterForm struct {
	Email    string `form:"email" json:"email" validate:"required,min=6,email"`
	Password string `form:"password" json:"-" validate:"required,min=8"`
	Name     string `form:"name" json:"name" validate:"required"`
}

func BindRegister(c *fiber.Ctx) (*RegisterForm, Errors) {
	f := &RegisterForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
		Name:     strings.TrimSpace(c.FormValue("name")),
	}
	return f, check(f)
}

type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"-" validate:"required"`
}

func BindLogin(c *fiber.Ctx) (*LoginForm, Errors) {
	f := &LoginForm{
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}
	return f, check(f)
}

// ProductForm is shared by the add and edit stock views.
type ProductForm struct {
	ProductCode    string  `form:"product_id" json:"product_id" validate:"required"`
	Name           string  `form:"product_name" json:"product_name" validate:"required"`
	Price          float64 `form:"product_price" json:"product_price" validate:"gte=0"`
	WholesalePrice float64 `form:"wholesale_price" json:"wholesale_price" validate:"gte=0"`
	Quantity       int     `form:"quantity" json:"quantity" validate:"gte=0"`
	ImgURL         string  `form:"img_url" json:"img_url" validate:"required"`
	Description    string  `form:"description" json:"description" validate:"required"`
}

func BindProduct(c *fiber.Ctx) (*ProductForm, Errors) {
	errs := Errors{}
	f := &ProductForm{
		ProductCode: strings.TrimSpace(c.FormValue("product_id")),
		Name:        strings.TrimSpace(c.FormValue("product_name")),
		ImgURL:      strings.TrimSpace(c.FormValue("img_url")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}
	f.Price = floatField(c, "product_price", errs)
	f.WholesalePrice = floatField(c, "wholesale_price", errs)
	f.Quantity = intField(c, "quantity", errs)

	for field, msgs := range check(f) {
		if len(errs[field]) > 0 {
			continue // a coercion failure already explains this field
		}
		errs[field] = msgs
	}
	return f, errs
}

// FromProduct prefills the form for the edit view.
func FromProduct(p *model.Product) *ProductForm {
	return &ProductForm{
		ProductCode:    p.ProductCode,
		Name:           p.Name,
		Price:          p.Price,
		WholesalePrice: p.WholesalePrice,
		Quantity:       p.Quantity,
		ImgURL:         p.ImgURL,
		Description:    p.Description,
	}
}

// ToModel copies the validated fields onto a product row.
func (f *ProductForm) ToModel() *model.Product {
	return &model.Product{
		ProductCode:    f.ProductCode,
		Name:           f.Name,
		Price:          f.Price,
		WholesalePrice: f.WholesalePrice,
		Quantity:       f.Quantity,
		ImgURL:         f.ImgURL,
		Description:    f.Description,
	}
}

func floatField(c *fiber.Ctx, field string, errs Errors) float64 {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		errs.Add(field, messages[field]["required"])
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(field, "Not a valid float value.")
		return 0
	}
	return v
}

func intField(c *fiber.Ctx, field string, errs Errors) int {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		errs.Add(field, messages[field]["required"])
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, "Not a valid integer value.")
		return 0
	}
	return v
}
