package sales

// PaymentMethod represents how a sale was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
)

// IsValid returns true if the payment method is one of the defined constants.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCredit:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}
