// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// AuthenticatedUser is the identity summary of a signed-in user.
// It is immutable once constructed: a new value replaces the old one on every
// successful sign-in or session restore, and no field is ever patched in place.
type AuthenticatedUser struct {
	id          string
	email       string
	displayName string
	photoURL    string
	provider    ProviderType
}

// UserParams carries the fields used to build an AuthenticatedUser.
// Empty optional fields mean "absent".
type UserParams struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    string
	Provider    ProviderType
}

// NewAuthenticatedUser builds an immutable AuthenticatedUser.
func NewAuthenticatedUser(params UserParams) *AuthenticatedUser {
	return &AuthenticatedUser{
		id:          params.ID,
		email:       params.Email,
		displayName: params.DisplayName,
		photoURL:    params.PhotoURL,
		provider:    params.Provider,
	}
}

// ID returns the opaque stable identifier of the user.
func (u *AuthenticatedUser) ID() string { return u.id }

// Email returns the user's email address.
func (u *AuthenticatedUser) Email() string { return u.email }

// DisplayName returns the display name, or "" when absent.
func (u *AuthenticatedUser) DisplayName() string { return u.displayName }

// PhotoURL returns the avatar URL, or "" when absent.
func (u *AuthenticatedUser) PhotoURL() string { return u.photoURL }

// Provider returns the provider tag, or "" when absent.
func (u *AuthenticatedUser) Provider() ProviderType { return u.provider }

// Params returns the fields the user was built from.
func (u *AuthenticatedUser) Params() UserParams {
	return UserParams{
		ID:          u.id,
		Email:       u.email,
		DisplayName: u.displayName,
		PhotoURL:    u.photoURL,
		Provider:    u.provider,
	}
}
