package checkout

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/angelmondragon/shopfront-client/internal/api"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
)

// Form carries the checkout shipping/contact/payment fields. Every field
// is required; this is a presence check only, not business validation.
// Card fields are opaque pass-through data and are never logged.
type Form struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	ZipCode    string `json:"zipCode" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate blocks submission before any network call. Failures surface
// inline per field, not through the global notifier.
func (f Form) Validate() error {
	if err := validate.Struct(f); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	}
	return "is invalid"
}

// shippingAddress projects the form's address block into the draft shape.
func (f Form) shippingAddress() api.ShippingAddress {
	return api.ShippingAddress{
		Street:  f.Address,
		City:    f.City,
		ZipCode: f.ZipCode,
	}
}

// CheckStock bounds a storefront quantity selection against a live
// snapshot. Checkout itself never re-validates stock; the backend is
// authoritative at submission time.
func CheckStock(snapshot *api.StockSnapshot, requested int) error {
	if requested < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	available := 0
	if snapshot != nil {
		available = snapshot.AvailableQuantity
	}
	if requested > available {
		return pkgerrors.New(pkgerrors.CodeInsufficientStock, "not enough stock").
			WithDetails(fmt.Sprintf("requested %d, available %d", requested, available))
	}
	return nil
}
