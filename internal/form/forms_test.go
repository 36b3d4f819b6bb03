package form

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, values url.Values, handler fiber.Handler) {
	t.Helper()
	app := fiber.New()
	app.Post("/", handler)

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
}

func bindRegister(t *testing.T, values url.Values) (*RegisterForm, Errors) {
	t.Helper()
	var f *RegisterForm
	var errs Errors
	postForm(t, values, func(c *fiber.Ctx) error {
		f, errs = BindRegister(c)
		return nil
	})
	return f, errs
}

func bindLogin(t *testing.T, values url.Values) (*LoginForm, Errors) {
	t.Helper()
	var f *LoginForm
	var errs Errors
	postForm(t, values, func(c *fiber.Ctx) error {
		f, errs = BindLogin(c)
		return nil
	})
	return f, errs
}

func bindProduct(t *testing.T, values url.Values) (*ProductForm, Errors) {
	t.Helper()
	var f *ProductForm
	var errs Errors
	postForm(t, values, func(c *fiber.Ctx) error {
		f, errs = BindProduct(c)
		return nil
	})
	return f, errs
}

func validProductValues() url.Values {
	return url.Values{
		"product_id":      {"P1"},
		"product_name":    {"Widget"},
		"product_price":   {"9.99"},
		"wholesale_price": {"4.99"},
		"quantity":        {"10"},
		"img_url":         {"http://x/i.png"},
		"description":     {"d"},
	}
}

func TestBindRegister_Valid(t *testing.T) {
	f, errs := bindRegister(t, url.Values{
		"email":    {"a@b.com"},
		"password": {"longenough1"},
		"name":     {"A"},
	})
	require.False(t, errs.Any())
	require.Equal(t, "a@b.com", f.Email)
	require.Equal(t, "longenough1", f.Password)
	require.Equal(t, "A", f.Name)
}

func TestBindRegister_MissingEmail(t *testing.T) {
	_, errs := bindRegister(t, url.Values{
		"password": {"longenough1"},
		"name":     {"A"},
	})
	require.Equal(t, "Invalid Email Address", errs.First("email"))
}

func TestBindRegister_ShortEmail(t *testing.T) {
	// min-length fires before the shape check
	_, errs := bindRegister(t, url.Values{
		"email":    {"a@b.c"},
		"password": {"longenough1"},
		"name":     {"A"},
	})
	require.Equal(t, "Email to short. Try again.", errs.First("email"))
}

func TestBindRegister_BadEmailShape(t *testing.T) {
	_, errs := bindRegister(t, url.Values{
		"email":    {"notanemail"},
		"password": {"longenough1"},
		"name":     {"A"},
	})
	require.Equal(t, "Invalid Email Address. Try again.", errs.First("email"))
}

func TestBindRegister_ShortPassword(t *testing.T) {
	_, errs := bindRegister(t, url.Values{
		"email":    {"a@b.com"},
		"password": {"short"},
		"name":     {"A"},
	})
	require.Equal(t, "Password must be 8 characters minimum. Try again.", errs.First("password"))
}

func TestBindRegister_MissingName(t *testing.T) {
	_, errs := bindRegister(t, url.Values{
		"email":    {"a@b.com"},
		"password": {"longenough1"},
	})
	require.Equal(t, "Need to provide a valid name.", errs.First("name"))
}

func TestBindRegister_CollectsAllFields(t *testing.T) {
	_, errs := bindRegister(t, url.Values{})
	require.Len(t, errs, 3)
	require.Len(t, errs["email"], 1) // first failing rule only
}

func TestBindLogin_Valid(t *testing.T) {
	f, errs := bindLogin(t, url.Values{
		"email":    {"a@b.com"},
		"password": {"whatever"},
	})
	require.False(t, errs.Any())
	require.Equal(t, "a@b.com", f.Email)
}

func TestBindLogin_MissingPassword(t *testing.T) {
	_, errs := bindLogin(t, url.Values{"email": {"a@b.com"}})
	require.Equal(t, "Invalid password. Try again.", errs.First("password"))
}

func TestBindProduct_Valid(t *testing.T) {
	f, errs := bindProduct(t, validProductValues())
	require.False(t, errs.Any())
	require.Equal(t, "P1", f.ProductCode)
	require.Equal(t, "Widget", f.Name)
	require.Equal(t, 9.99, f.Price)
	require.Equal(t, 4.99, f.WholesalePrice)
	require.Equal(t, 10, f.Quantity)
}

func TestBindProduct_MissingFields(t *testing.T) {
	_, errs := bindProduct(t, url.Values{})
	require.Equal(t, "Need to provide a Product ID.", errs.First("product_id"))
	require.Equal(t, "Need to provide a Product Price.", errs.First("product_price"))
	require.Equal(t, "Need to provide a Quantity.", errs.First("quantity"))
	require.Equal(t, "Need to provide an Image URL.", errs.First("img_url"))
}

func TestBindProduct_BadFloat(t *testing.T) {
	values := validProductValues()
	values.Set("product_price", "abc")
	_, errs := bindProduct(t, values)
	require.Equal(t, []string{"Not a valid float value."}, errs["product_price"])
}

func TestBindProduct_BadInt(t *testing.T) {
	values := validProductValues()
	values.Set("quantity", "1.5")
	_, errs := bindProduct(t, values)
	require.Equal(t, []string{"Not a valid integer value."}, errs["quantity"])
}

func TestBindProduct_NegativePrice(t *testing.T) {
	values := validProductValues()
	values.Set("product_price", "-1")
	_, errs := bindProduct(t, values)
	require.Equal(t, "Product Price cannot be negative.", errs.First("product_price"))
}

func TestBindProduct_ZeroQuantityIsValid(t *testing.T) {
	values := validProductValues()
	values.Set("quantity", "0")
	f, errs := bindProduct(t, values)
	require.False(t, errs.Any())
	require.Equal(t, 0, f.Quantity)
}

func TestFromProductRoundTrip(t *testing.T) {
	f, errs := bindProduct(t, validProductValues())
	require.False(t, errs.Any())

	p := f.ToModel()
	require.Equal(t, f, FromProduct(p))
}
