package response

import (
	"testing"

	"pazes_checkout/internal/usecase"
)

func TestFromReconciliationOutcome(t *testing.T) {
	t.Run("processed", func(t *testing.T) {
		resp := FromReconciliationOutcome(usecase.ReconciliationOutcome{Processed: true})
		if !resp.Received || resp.Ignored || resp.Error != "" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("ignored carries the reason", func(t *testing.T) {
		resp := FromReconciliationOutcome(usecase.ReconciliationOutcome{Ignored: true, Reason: "subsequent installment"})
		if !resp.Received || !resp.Ignored || resp.Reason != "subsequent installment" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("swallowed failure still acknowledges", func(t *testing.T) {
		resp := FromReconciliationOutcome(usecase.ReconciliationOutcome{})
		if !resp.Received || resp.Error == "" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}
