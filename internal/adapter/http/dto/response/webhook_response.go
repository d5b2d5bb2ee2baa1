package response

import "pazes_checkout/internal/usecase"

// WebhookResponse is the acknowledgement body returned to the gateway.
// Received is always true past the authentication gate: a non-success answer
// would trigger the sender's re-delivery policy.
type WebhookResponse struct {
	Received bool   `json:"received"`
	Ignored  bool   `json:"ignored,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
}

func FromReconciliationOutcome(out usecase.ReconciliationOutcome) WebhookResponse {
	resp := WebhookResponse{Received: true}
	switch {
	case out.Ignored:
		resp.Ignored = true
		resp.Reason = out.Reason
	case !out.Processed:
		resp.Error = "Internal processing failed"
	}
	return resp
}
