package prompt

import "context"

type confirmationKey struct{}

// WithConfirmation records the user's answer to a confirmation prompt on ctx.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmationKey{}, confirmed)
}

// RequestConfirmer answers confirmation prompts from the answer the client
// sent along with the request. No answer means no.
type RequestConfirmer struct{}

// NewRequestConfirmer creates a RequestConfirmer.
func NewRequestConfirmer() *RequestConfirmer {
	return &RequestConfirmer{}
}

// Confirm implements service.Confirmer.
func (RequestConfirmer) Confirm(ctx context.Context, _, _ string) bool {
	confirmed, _ := ctx.Value(confirmationKey{}).(bool)

	return confirmed
}
