// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authscreen/internal/domain/entity"
)

// AuthController owns the authentication state of one screen instance and is
// the only component allowed to call the identity provider and backend.
type AuthController interface {
	// Start runs the one-shot startup sequence: provider configuration and session restore.
	Start(ctx context.Context)

	// SignIn runs the interactive sign-in and commits the resulting user.
	SignIn(ctx context.Context) error

	// SignOut ends both provider and backend sessions.
	SignOut(ctx context.Context) error

	// State returns a snapshot of the current state.
	State() entity.AuthState

	// ConfigError returns the startup configuration failure message, or "" when configured.
	ConfigError() string
}
