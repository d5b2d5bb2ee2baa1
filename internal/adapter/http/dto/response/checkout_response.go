package response

// CheckoutResponse carries the payable invoice URL back to the enrollment
// form.
type CheckoutResponse struct {
	PaymentURL string `json:"paymentUrl"`
}
