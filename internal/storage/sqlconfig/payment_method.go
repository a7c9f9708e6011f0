package sqlconfig

type PaymentMethod string

const (
	PaymentMethodUPI       PaymentMethod = "UPI"
	PaymentMethodDebitCard PaymentMethod = "DEBIT_CARD"
	PaymentMethodCash      PaymentMethod = "CASH"
)

// PaymentMethods lists every accepted payment method in display order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodUPI,
	PaymentMethodDebitCard,
	PaymentMethodCash,
}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}
