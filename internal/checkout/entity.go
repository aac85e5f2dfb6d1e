// internal/checkout/entity.go
package checkout

// Step is one stage of the checkout flow
type Step struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Active      bool   `json:"active"`
	Disabled    bool   `json:"disabled"`
}

// Summary is the order pricing breakdown shown beside the checkout steps
type Summary struct {
	ItemsCount int     `json:"itemsCount"`
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	Discount   float64 `json:"discount"`
	Total      float64 `json:"total"`
}

// Payment is the payment capture form. Card fields are only required when
// the card method is selected.
type Payment struct {
	Method         string `json:"method" validate:"required,oneof=card paypal cod bank"`
	CardNumber     string `json:"cardNumber" validate:"required_if=Method card,omitempty,cardnumber"`
	ExpiryDate     string `json:"expiryDate" validate:"required_if=Method card,omitempty,cardexpiry"`
	CVV            string `json:"cvv" validate:"required_if=Method card,omitempty,cvv"`
	CardholderName string `json:"cardholderName" validate:"required_if=Method card,omitempty,min=2"`
	BillingAddress string `json:"billingAddress" validate:"required_if=Method card"`
}

// PaymentMethods lists the supported payment methods
var PaymentMethods = []string{"card", "paypal", "cod", "bank"}
