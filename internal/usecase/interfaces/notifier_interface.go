package interfaces

import "context"

// INotifier abstracts transactional email delivery. Fire-and-forget from the
// core's perspective; retries, if any, belong to the implementation.
type INotifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
