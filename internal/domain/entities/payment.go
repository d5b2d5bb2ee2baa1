package entities

// PaymentRequest is the gateway-agnostic charge description built by the
// checkout use case.
//
// Exactly one of CustomerRef / Customer is set: credit-card charges reference
// a previously created gateway customer, the other billing types embed the
// profile inline.
//
// ExternalReference is an opaque string the service controls end to end: the
// gateway echoes it back unchanged in webhook notifications, which is how
// attribution metadata survives the round trip.
type PaymentRequest struct {
	CustomerRef       string
	Customer          *CustomerProfile
	BillingType       BillingType
	Value             float64
	DueDate           string
	Description       string
	ExternalReference string
	InstallmentCount  int
	InstallmentValue  float64
	SuccessURL        string
	RemoteIP          string
}

// PaymentCharge is the gateway's answer to a created payment.
type PaymentCharge struct {
	ID         string
	InvoiceURL string
	Status     string
}

// Webhook event types that drive side effects. Every other event name is
// acknowledged and ignored.
const (
	EventPaymentConfirmed = "PAYMENT_CONFIRMED"
	EventPaymentReceived  = "PAYMENT_RECEIVED"
)

// NotificationPayment is the payment object embedded in a webhook
// notification. A sale with N installments produces N notifications over
// time, one per due installment; InstallmentNumber distinguishes them.
type NotificationPayment struct {
	ID                string  `json:"id"`
	CustomerRef       string  `json:"customer"`
	Status            string  `json:"status"`
	Value             float64 `json:"value"`
	Description       string  `json:"description"`
	BillingType       string  `json:"billingType"`
	InstallmentNumber int     `json:"installmentNumber,omitempty"`
	InstallmentGroup  string  `json:"installment,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
}

// PaymentNotification is the inbound webhook payload.
type PaymentNotification struct {
	Event   string              `json:"event"`
	Payment NotificationPayment `json:"payment"`
}

// SaleKey returns the identifier that makes a multi-installment sale a single
// logical transaction: the installment group when present, the payment id
// otherwise (single-payment sales have no group).
func (p NotificationPayment) SaleKey() string {
	if p.InstallmentGroup != "" {
		return p.InstallmentGroup
	}
	return p.ID
}
