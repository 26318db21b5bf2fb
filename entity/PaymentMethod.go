package entity

const (
	PaymentCOD    = "COD"
	PaymentOnline = "Online"
)

func ValidPaymentMethod(m string) bool {
	return m == PaymentCOD || m == PaymentOnline
}
