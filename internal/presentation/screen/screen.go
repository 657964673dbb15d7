// Package screen composes the authentication screen from the controller state.
package screen

import (
	"context"
	"sync"

	domainerrors "authscreen/internal/domain/errors"
	"authscreen/internal/domain/service"
	"authscreen/internal/presentation/profile"
	"authscreen/internal/usecase"

	"go.uber.org/fx"
)

// Kind names which variant of the screen is shown.
type Kind string

const (
	KindConfigError Kind = "config_error"
	KindSignedOut   Kind = "signed_out"
	KindSignedIn    Kind = "signed_in"
)

const (
	signInLabel    = "Sign in with Google"
	signingInLabel = "Signing in..."
)

// Button is a tappable control.
type Button struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// Model is the rendered screen.
type Model struct {
	Kind        Kind           `json:"kind"`
	ConfigError string         `json:"configError,omitempty"`
	Loading     bool           `json:"loading"`
	Error       string         `json:"error,omitempty"`
	SignIn      *Button        `json:"signIn,omitempty"`
	Profile     *profile.Model `json:"profile,omitempty"`
}

// Params holds dependencies for Screen, injected by Fx.
type Params struct {
	fx.In

	Controller usecase.AuthController
	Confirmer  service.Confirmer
	Alerter    service.Alerter
}

// Screen renders the controller state and routes user actions to it.
// The profile view is rebuilt whenever the signed-in user changes.
type Screen struct {
	controller usecase.AuthController
	confirmer  service.Confirmer
	alerter    service.Alerter

	mu   sync.Mutex
	view *profile.View
}

// New is the constructor for Screen.
func New(params Params) *Screen {
	return &Screen{
		controller: params.Controller,
		confirmer:  params.Confirmer,
		alerter:    params.Alerter,
	}
}

// Render returns the current screen model.
func (s *Screen) Render() Model {
	if configErr := s.controller.ConfigError(); configErr != "" {
		return Model{Kind: KindConfigError, ConfigError: configErr}
	}

	state := s.controller.State()
	model := Model{Loading: state.Loading, Error: state.Error}

	if state.User != nil {
		profileModel := s.currentView().Render()
		model.Kind = KindSignedIn
		model.Profile = &profileModel

		return model
	}

	label := signInLabel
	if state.Loading {
		label = signingInLabel
	}

	model.Kind = KindSignedOut
	model.SignIn = &Button{Label: label, Disabled: state.Loading || !state.Configured}

	return model
}

// SignIn starts a sign in. It is refused without reaching the controller when
// the screen is in its configuration error state.
func (s *Screen) SignIn(ctx context.Context) error {
	if s.controller.ConfigError() != "" {
		return domainerrors.NotConfigured()
	}

	return s.controller.SignIn(ctx)
}

// RequestSignOut forwards a sign-out tap to the profile view. It reports
// whether the user confirmed and sign out ran.
func (s *Screen) RequestSignOut(ctx context.Context) (bool, error) {
	if s.controller.State().User == nil {
		return false, domainerrors.ErrNotSignedIn
	}

	return s.currentView().RequestSignOut(ctx), nil
}

func (s *Screen) currentView() *profile.View {
	user := s.controller.State().User

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == nil || s.view.User() != user {
		s.view = profile.NewView(user, s.controller.SignOut, s.confirmer, s.alerter)
	}

	return s.view
}
