// Package form binds submitted POST fields into typed form structs and
// validates them. Binding only happens on submit; GET views construct the
// zero (or prefilled) form directly.
package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field to its failure messages, first failing rule first.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// First returns the leading message for a field, or "" when the field passed.
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

var validate = validator.New()

func init() {
	// Report failures under the submitted field names, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// messages holds the user-facing text per field and failed rule.
var messages = map[string]map[string]string{
	"email": {
		"required": "Invalid Email Address",
		"min":      "Email to short. Try again.",
		"email":    "Invalid Email Address. Try again.",
	},
	"password": {
		"required": "Invalid password. Try again.",
		"min":      "Password must be 8 characters minimum. Try again.",
	},
	"name": {
		"required": "Need to provide a valid name.",
	},
	"product_id": {
		"required": "Need to provide a Product ID.",
	},
	"product_name": {
		"required": "Need to provide a Product Name.",
	},
	"product_price": {
		"required": "Need to provide a Product Price.",
		"gte":      "Product Price cannot be negative.",
	},
	"wholesale_price": {
		"required": "Need to provide a Wholesale Price.",
		"gte":      "Wholesale Price cannot be negative.",
	},
	"quantity": {
		"required": "Need to provide a Quantity.",
		"gte":      "Quantity cannot be negative.",
	},
	"img_url": {
		"required": "Need to provide an Image URL.",
	},
	"description": {
		"required": "Need to provide a Product Description.",
	},
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := messages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Invalid value for %s.", fe.Field())
}

// check runs the validate tags. The validator stops at the first failing
// rule per field, which keeps per-field messages in rule order.
func check(v any) Errors {
	errs := Errors{}
	if err := validate.Struct(v); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs.Add(fe.Field(), messageFor(fe))
		}
	}
	return errs
}
