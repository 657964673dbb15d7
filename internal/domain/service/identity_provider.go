// Package service declares the ports the authentication core depends on.
package service

import (
	"context"
	"fmt"

	"authscreen/internal/domain/entity"
)

// ProviderErrorCode is a status code reported by the native identity provider.
type ProviderErrorCode string

const (
	// ProviderCodeSignInCancelled is reported when the user dismisses the sign-in sheet.
	ProviderCodeSignInCancelled ProviderErrorCode = "SIGN_IN_CANCELLED"
	// ProviderCodeInProgress is reported when another sign-in is already running.
	ProviderCodeInProgress ProviderErrorCode = "IN_PROGRESS"
	// ProviderCodePlayServicesNotAvailable is reported when host services are missing or outdated.
	ProviderCodePlayServicesNotAvailable ProviderErrorCode = "PLAY_SERVICES_NOT_AVAILABLE"
	// ProviderCodeSignInRequired is reported when an operation needs a signed-in provider user.
	ProviderCodeSignInRequired ProviderErrorCode = "SIGN_IN_REQUIRED"
	// ProviderCodeDeveloperError is reported for misconfiguration such as a wrong client ID.
	ProviderCodeDeveloperError ProviderErrorCode = "DEVELOPER_ERROR"
)

// ProviderError is an identity provider failure with a distinguishable code.
type ProviderError struct {
	Code    ProviderErrorCode
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ConfigureOptions configures the identity provider client.
type ConfigureOptions struct {
	WebClientID   string `validate:"required"`
	IOSClientID   string
	Scopes        []string
	OfflineAccess bool
}

// ProviderProfile is the user payload returned by the identity provider.
type ProviderProfile struct {
	ID         string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	Photo      string
}

// ProviderSignInResult is the outcome of a successful provider sign-in.
// Either field may be missing; callers must check both.
type ProviderSignInResult struct {
	Profile       *ProviderProfile
	IdentityToken string
}

// IdentityProvider is the native identity provider client.
type IdentityProvider interface {
	// PlatformSupported reports whether the native flow is available on this platform.
	// It is a static capability query: no I/O and no side effects.
	PlatformSupported() bool

	// Configure prepares the client. It must succeed before SignIn.
	Configure(ctx context.Context, opts ConfigureOptions) error

	// CheckHostServices verifies that the services the native flow depends on are available.
	CheckHostServices(ctx context.Context) error

	// SignIn runs the interactive sign-in.
	SignIn(ctx context.Context) (*ProviderSignInResult, error)

	// SignOut ends the provider-side session.
	SignOut(ctx context.Context) error

	// GetProvider returns the provider type
	GetProvider() entity.ProviderType
}
