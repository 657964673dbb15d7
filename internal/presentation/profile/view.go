// Package profile renders the signed-in user's identity summary and owns the
// sign-out control. It knows nothing about identity providers or backends.
package profile

import (
	"context"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"authscreen/internal/domain/entity"
	domainerrors "authscreen/internal/domain/errors"
	"authscreen/internal/domain/service"
)

const (
	placeholderText    = "Not signed in"
	unknownInitials    = "?"
	signOutLabel       = "Sign Out"
	signingOutLabel    = "Signing out..."
	confirmTitle       = "Sign Out"
	confirmMessage     = "Are you sure you want to sign out?"
	signOutFailedTitle = "Error"
)

// SignOutFunc performs the actual sign out.
type SignOutFunc func(ctx context.Context) error

// Model is the rendered profile card.
type Model struct {
	SignedIn        bool   `json:"signedIn"`
	Placeholder     string `json:"placeholder,omitempty"`
	Initials        string `json:"initials,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	Email           string `json:"email,omitempty"`
	PhotoURL        string `json:"photoUrl,omitempty"`
	Provider        string `json:"provider,omitempty"`
	UserID          string `json:"userId,omitempty"`
	SignOutLabel    string `json:"signOutLabel,omitempty"`
	SignOutDisabled bool   `json:"signOutDisabled"`
}

// View presents one user. The only state it keeps is whether a sign out it
// started is still running.
type View struct {
	user      *entity.AuthenticatedUser
	onSignOut SignOutFunc
	confirmer service.Confirmer
	alerter   service.Alerter

	signingOut atomic.Bool
}

// NewView builds a view for user, which may be nil.
func NewView(user *entity.AuthenticatedUser, onSignOut SignOutFunc, confirmer service.Confirmer, alerter service.Alerter) *View {
	return &View{
		user:      user,
		onSignOut: onSignOut,
		confirmer: confirmer,
		alerter:   alerter,
	}
}

// User returns the user the view was built for.
func (v *View) User() *entity.AuthenticatedUser {
	return v.user
}

// SigningOut reports whether a sign out started from this view is running.
func (v *View) SigningOut() bool {
	return v.signingOut.Load()
}

// Render returns the current model.
func (v *View) Render() Model {
	if v.user == nil {
		return Model{SignedIn: false, Placeholder: placeholderText}
	}

	signingOut := v.signingOut.Load()
	label := signOutLabel
	if signingOut {
		label = signingOutLabel
	}

	return Model{
		SignedIn:        true,
		Initials:        Initials(v.user.DisplayName(), v.user.Email()),
		DisplayName:     v.user.DisplayName(),
		Email:           v.user.Email(),
		PhotoURL:        v.user.PhotoURL(),
		Provider:        v.user.Provider().String(),
		UserID:          v.user.ID(),
		SignOutLabel:    label,
		SignOutDisabled: signingOut,
	}
}

// RequestSignOut asks for confirmation and then runs onSignOut. It reports
// whether sign out was attempted. Failures are shown through the alerter and
// never returned.
func (v *View) RequestSignOut(ctx context.Context) bool {
	if v.user == nil || v.onSignOut == nil {
		return false
	}

	if !v.confirmer.Confirm(ctx, confirmTitle, confirmMessage) {
		return false
	}

	if !v.signingOut.CompareAndSwap(false, true) {
		return false
	}
	defer v.signingOut.Store(false)

	if err := v.onSignOut(ctx); err != nil {
		// A sign out refused because another operation is running is not a failure to report.
		if kind, ok := domainerrors.KindOf(err); ok && kind == domainerrors.KindOperationInProgress {
			return false
		}

		v.alerter.Alert(ctx, signOutFailedTitle, err.Error())
	}

	return true
}

// Initials derives up to two letters from the display name, falling back to
// the first letter of the email local part, then to "?".
func Initials(displayName, email string) string {
	if tokens := strings.Fields(displayName); len(tokens) > 0 {
		first := firstLetter(tokens[0])
		if len(tokens) == 1 {
			return first
		}

		return first + firstLetter(tokens[len(tokens)-1])
	}

	localPart, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	if localPart != "" {
		return firstLetter(localPart)
	}

	return unknownInitials
}

func firstLetter(s string) string {
	r, _ := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r))
}
