// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"authscreen/config"
	deliverycontext "authscreen/internal/delivery/context"
	"authscreen/internal/domain/entity"
	domainerrors "authscreen/internal/domain/errors"
	"authscreen/internal/domain/service"
	"authscreen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	signInAlertTitle  = "Sign In Error"
	signOutAlertTitle = "Sign Out Error"
)

// AuthControllerParams holds dependencies for the auth controller, injected by Fx.
type AuthControllerParams struct {
	fx.In

	Config   *config.Config
	Provider service.IdentityProvider
	Backend  service.BackendAuthClient
	Alerter  service.Alerter
	Logger   *slog.Logger
}

// authController implements the AuthController interface.
//
// mu guards state and configErr only; it is never held across a call into the
// provider or the backend so State stays readable while an operation runs.
type authController struct {
	signInCfg *config.GoogleSignInConfig
	provider  service.IdentityProvider
	backend   service.BackendAuthClient
	alerter   service.Alerter
	logger    *slog.Logger

	startOnce sync.Once

	mu        sync.RWMutex
	state     entity.AuthState
	configErr string
}

// NewAuthController is the constructor for authController.
func NewAuthController(params AuthControllerParams) usecase.AuthController {
	return &authController{
		signInCfg: params.Config.GoogleSignIn,
		provider:  params.Provider,
		backend:   params.Backend,
		alerter:   params.Alerter,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the controller's logger.
func (c *authController) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Start configures the provider and restores any existing backend session.
// It runs at most once per controller; later calls are no-ops.
func (c *authController) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.configure(ctx)
		c.restoreSession(ctx)
	})
}

func (c *authController) configure(ctx context.Context) {
	var clientID string
	if c.signInCfg != nil {
		clientID = strings.TrimSpace(c.signInCfg.WebClientID)
	}

	if clientID == "" {
		authErr := domainerrors.ConfigurationError(
			fmt.Sprintf("Google Sign-In is not configured. Set %s to enable sign in.", config.WebClientIDEnv), nil)
		c.log(ctx).Error("Identity provider client ID missing")
		c.setConfigError(authErr)

		return
	}

	opts := service.ConfigureOptions{
		WebClientID:   clientID,
		IOSClientID:   c.signInCfg.IOSClientID,
		Scopes:        c.signInCfg.Scopes,
		OfflineAccess: c.signInCfg.OfflineAccess,
	}

	if err := c.provider.Configure(ctx, opts); err != nil {
		authErr := domainerrors.ConfigurationError(
			fmt.Sprintf("Google Sign-In configuration failed: %s", err.Error()), err)
		c.log(ctx).Error("Failed to configure identity provider", slog.Any("error", err))
		c.setConfigError(authErr)

		return
	}

	c.mu.Lock()
	c.state.Configured = true
	c.mu.Unlock()

	c.log(ctx).Info("Identity provider configured", slog.String("provider", c.provider.GetProvider().String()))
}

func (c *authController) setConfigError(authErr *domainerrors.AuthError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.configErr = authErr.Message()
}

func (c *authController) restoreSession(ctx context.Context) {
	session, err := c.backend.GetCurrentSession(ctx)
	if err != nil {
		c.log(ctx).Warn("Session restore failed, continuing signed out", slog.Any("error", err))

		return
	}

	if session == nil || session.User == nil {
		c.log(ctx).Debug("No session to restore")

		return
	}

	user := userFromSession(session.User)

	c.mu.Lock()
	if c.state.User == nil {
		c.state.User = user
	}
	c.mu.Unlock()

	c.log(ctx).Info("Session restored", slog.String("user_id", user.ID()))
}

// SignIn runs the full sign-in sequence. Failures are stored in the state,
// raised as an alert and returned; the current user is never modified on failure.
func (c *authController) SignIn(ctx context.Context) error {
	if !c.begin() {
		return domainerrors.OperationInProgress(nil)
	}
	defer c.end()

	c.log(ctx).Info("Sign in started")

	user, err := c.signIn(ctx)
	if err != nil {
		return c.fail(ctx, signInAlertTitle, err)
	}

	c.mu.Lock()
	c.state.User = user
	c.state.Error = ""
	c.mu.Unlock()

	c.log(ctx).Info("Sign in succeeded", slog.String("user_id", user.ID()), slog.String("email", user.Email()))

	return nil
}

func (c *authController) signIn(ctx context.Context) (*entity.AuthenticatedUser, error) {
	if !c.provider.PlatformSupported() {
		return nil, domainerrors.UnsupportedPlatform()
	}

	if !c.State().Configured {
		return nil, domainerrors.NotConfigured()
	}

	if err := c.provider.CheckHostServices(ctx); err != nil {
		return nil, domainerrors.ServiceUnavailable(err)
	}

	// Reset any stale provider session so the account chooser always shows.
	if err := c.provider.SignOut(ctx); err != nil {
		c.log(ctx).Debug("Ignoring provider sign-out failure before sign in", slog.Any("error", err))
	}

	result, err := c.provider.SignIn(ctx)
	if err != nil {
		return nil, mapProviderError(err)
	}

	if result == nil || result.IdentityToken == "" || result.Profile == nil {
		return nil, domainerrors.MissingCredential()
	}

	session, err := c.backend.SignInWithIDToken(ctx, entity.ProviderTypeGoogle, result.IdentityToken)
	if err != nil {
		return nil, domainerrors.BackendAuthFailed(backendMessage(err), err)
	}

	if session == nil || session.User == nil {
		return nil, domainerrors.MissingBackendUser()
	}

	return userFromSignIn(result.Profile, session.User), nil
}

// SignOut ends the provider session on a best-effort basis and the backend
// session for real. A backend failure keeps the user signed in.
func (c *authController) SignOut(ctx context.Context) error {
	if !c.begin() {
		return domainerrors.OperationInProgress(nil)
	}
	defer c.end()

	c.log(ctx).Info("Sign out started")

	if err := c.provider.SignOut(ctx); err != nil {
		c.log(ctx).Warn("Provider sign-out failed, continuing", slog.Any("error", err))
	}

	if err := c.backend.SignOut(ctx); err != nil {
		return c.fail(ctx, signOutAlertTitle, domainerrors.SignOutFailed(backendMessage(err), err))
	}

	c.mu.Lock()
	c.state.User = nil
	c.state.Error = ""
	c.mu.Unlock()

	c.log(ctx).Info("Sign out succeeded")

	return nil
}

// State returns a snapshot of the current state.
func (c *authController) State() entity.AuthState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// ConfigError returns the startup configuration failure message.
func (c *authController) ConfigError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.configErr
}

// begin marks an operation as running. It refuses when one is already in flight.
func (c *authController) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		return false
	}
	c.state.Loading = true

	return true
}

func (c *authController) end() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Loading = false
}

// fail records err as the visible error and raises an alert.
func (c *authController) fail(ctx context.Context, title string, err error) error {
	var authErr *domainerrors.AuthError
	if !errors.As(err, &authErr) {
		authErr = domainerrors.ProviderFailed(err.Error(), err)
	}

	c.mu.Lock()
	c.state.Error = authErr.Message()
	c.mu.Unlock()

	c.log(ctx).Error("Authentication operation failed",
		slog.String("kind", string(authErr.Kind())),
		slog.String("message", authErr.Message()),
		slog.Any("error", authErr.Unwrap()))

	c.alerter.Alert(ctx, title, authErr.Message())

	return authErr
}

// mapProviderError converts provider failures to the taxonomy. Known codes get
// fixed messages; anything else keeps its own message.
func mapProviderError(err error) *domainerrors.AuthError {
	var providerErr *service.ProviderError
	if !errors.As(err, &providerErr) {
		return domainerrors.ProviderFailed(err.Error(), err)
	}

	switch providerErr.Code {
	case service.ProviderCodeSignInCancelled:
		return domainerrors.UserCancelled(err)
	case service.ProviderCodeInProgress:
		return domainerrors.OperationInProgress(err)
	case service.ProviderCodePlayServicesNotAvailable:
		return domainerrors.ServiceUnavailable(err)
	}

	if providerErr.Message != "" {
		return domainerrors.ProviderFailed(providerErr.Message, err)
	}

	return domainerrors.ProviderFailed(providerErr.Error(), err)
}

func backendMessage(err error) string {
	var backendErr *service.BackendAuthError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}

	return err.Error()
}
