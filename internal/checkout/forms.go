// internal/checkout/forms.go
package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/your-org/storefront-gateway/internal/order"
)

var (
	phonePattern      = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
	postcodePattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cardNumberPattern = regexp.MustCompile(`^\d{4}\s?\d{4}\s?\d{4}\s?\d{4}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// FieldError is a single field-level validation failure. Field errors are
// surfaced inline and never sent to the backend.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors for one form submission
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FormValidator validates checkout form submissions
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator builds the validator with the checkout-specific rules
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("phone", patternValidation(phonePattern))
	v.RegisterValidation("postcode", patternValidation(postcodePattern))
	v.RegisterValidation("cardnumber", patternValidation(cardNumberPattern))
	v.RegisterValidation("cardexpiry", patternValidation(cardExpiryPattern))
	v.RegisterValidation("cvv", patternValidation(cvvPattern))

	return &FormValidator{validate: v}
}

// ValidateAddress checks a shipping address form
func (f *FormValidator) ValidateAddress(addr order.Address) error {
	return f.translate(f.validate.Struct(addr))
}

// ValidatePayment checks a payment form
func (f *FormValidator) ValidatePayment(p Payment) error {
	return f.translate(f.validate.Struct(p))
}

func patternValidation(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// translate converts validator errors to inline field messages
func (f *FormValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	result := &ValidationError{}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "phone":
		return "Please enter a valid phone number"
	case "postcode":
		return "Please enter a valid postal code"
	case "cardnumber":
		return "Please enter a valid card number"
	case "cardexpiry":
		return "Please enter a valid expiry date (MM/YY)"
	case "cvv":
		return "Please enter a valid CVV"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
