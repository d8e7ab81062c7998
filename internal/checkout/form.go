package checkout

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/steeltrade/storefront-backend/pkg/enums"
)

// Form is the contact/payment form filled before paying. Validation tags
// encode the enablement rules: every contact field non-empty, a 12-digit tax
// identifier, a +7 phone with exactly ten digits, and a selected payment
// method. Only the tax id, phone and payment method carry format rules; the
// contact fields, email included, just have to be filled in.
type Form struct {
	CompanyName   string `json:"company_name" validate:"required"`
	ContactName   string `json:"contact_name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	INN           string `json:"inn" validate:"required,inn"`
	Phone         string `json:"phone" validate:"required,ruphone"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

var (
	innPattern     = regexp.MustCompile(`^\d{12}$`)
	ruPhonePattern = regexp.MustCompile(`^\+7\d{10}$`)
)

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
	v.RegisterValidation("inn", func(fl validator.FieldLevel) bool {
		return innPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("ruphone", func(fl validator.FieldLevel) bool {
		return ruPhonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return enums.PaymentMethod(fl.Field().String()).IsValid()
	})
	return v
}

// ValidateForm checks the form and returns per-field messages when invalid.
// It drives pay-button enablement, so an invalid form is not an error value:
// the button simply stays disabled.
func ValidateForm(form Form) (bool, map[string]string) {
	err := validate.Struct(form)
	if err == nil {
		return true, nil
	}

	details := map[string]string{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
	} else {
		details["form"] = err.Error()
	}
	return false, details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "inn":
		return "must be exactly 12 digits"
	case "ruphone":
		return "must be +7 followed by 10 digits"
	case "payment_method":
		return fmt.Sprintf("must be one of the offered methods, got %q", fe.Value())
	}
	return "is invalid"
}
