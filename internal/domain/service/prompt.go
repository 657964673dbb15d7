package service

import "context"

// Alerter shows a blocking message the user has to acknowledge.
type Alerter interface {
	Alert(ctx context.Context, title, message string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}
