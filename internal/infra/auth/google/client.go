// Package google implements the native Google Sign-In client.
package google

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"authscreen/config"
	deliverycontext "authscreen/internal/delivery/context"
	"authscreen/internal/domain/entity"
	"authscreen/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const (
	platformAndroid = "android"
	platformIOS     = "ios"
)

var defaultIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

// ClientParams holds dependencies for the Google Sign-In client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Bridge Bridge
	Logger *slog.Logger
}

// Client talks to the device's Google Sign-In UI through a Bridge.
type Client struct {
	platform string
	issuers  []string
	bridge   Bridge
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time

	inFlight atomic.Bool

	mu      sync.RWMutex
	opts    *service.ConfigureOptions
	current *service.ProviderProfile
}

// NewClient creates a new Google Sign-In client
func NewClient(params ClientParams) service.IdentityProvider {
	return newClient(params.Config.GoogleSignIn, params.Bridge, params.Logger)
}

func newClient(cfg *config.GoogleSignInConfig, bridge Bridge, logger *slog.Logger) *Client {
	c := &Client{
		bridge:   bridge,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
		issuers:  defaultIssuers,
	}

	if cfg != nil {
		c.platform = cfg.Platform
		if len(cfg.Issuers) > 0 {
			c.issuers = cfg.Issuers
		}
	}

	return c
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// PlatformSupported reports whether native sign-in exists on the configured platform.
func (c *Client) PlatformSupported() bool {
	return c.platform == platformAndroid || c.platform == platformIOS
}

// Configure stores the client options. It may be called again to replace them.
func (c *Client) Configure(ctx context.Context, opts service.ConfigureOptions) error {
	if err := c.validate.Struct(opts); err != nil {
		return &service.ProviderError{Code: service.ProviderCodeDeveloperError, Message: "webClientId is required"}
	}

	stored := opts
	stored.Scopes = slices.Clone(opts.Scopes)

	c.mu.Lock()
	c.opts = &stored
	c.mu.Unlock()

	c.log(ctx).Debug("Google Sign-In configured",
		slog.String("platform", c.platform),
		slog.Bool("offline_access", opts.OfflineAccess),
		slog.Any("scopes", opts.Scopes))

	return nil
}

// CheckHostServices verifies Google Play Services on Android. iOS has no such dependency.
func (c *Client) CheckHostServices(ctx context.Context) error {
	if c.platform != platformAndroid {
		return nil
	}

	if !c.bridge.HostServicesAvailable(ctx) {
		return &service.ProviderError{
			Code:    service.ProviderCodePlayServicesNotAvailable,
			Message: "Google Play Services is missing or out of date",
		}
	}

	return nil
}

// SignIn runs the native account chooser. Only one sign-in may run at a time.
func (c *Client) SignIn(ctx context.Context) (*service.ProviderSignInResult, error) {
	opts := c.options()
	if opts == nil {
		return nil, &service.ProviderError{Code: service.ProviderCodeDeveloperError, Message: "client is not configured"}
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, &service.ProviderError{Code: service.ProviderCodeInProgress, Message: "sign in already in progress"}
	}
	defer c.inFlight.Store(false)

	cred, err := c.bridge.RequestCredential(ctx)
	if err != nil {
		return nil, err
	}

	if cred == nil {
		return &service.ProviderSignInResult{}, nil
	}

	if cred.Cancelled {
		return nil, &service.ProviderError{Code: service.ProviderCodeSignInCancelled, Message: "the user canceled the sign in flow"}
	}

	var claims *IDTokenClaims
	if cred.IDToken != "" {
		claims, err = parseIDToken(cred.IDToken)
		if err != nil {
			return nil, &service.ProviderError{Code: service.ProviderCodeDeveloperError, Message: err.Error()}
		}

		if err := verifyTokenClaims(claims, c.issuers, []string{opts.WebClientID, opts.IOSClientID}, c.now()); err != nil {
			return nil, &service.ProviderError{Code: service.ProviderCodeDeveloperError, Message: err.Error()}
		}
	}

	// The token only fills gaps in the profile the device sent. Without a
	// device profile there is no user, whatever the token says.
	var profile *service.ProviderProfile
	if cred.Profile != nil {
		profile = mergeProfile(cred.Profile, claims)
	}

	c.mu.Lock()
	c.current = profile
	c.mu.Unlock()

	c.log(ctx).Debug("Google account selected", slog.Bool("has_id_token", cred.IDToken != ""))

	return &service.ProviderSignInResult{Profile: profile, IdentityToken: cred.IDToken}, nil
}

// SignOut forgets the selected account.
func (c *Client) SignOut(ctx context.Context) error {
	if c.options() == nil {
		return &service.ProviderError{Code: service.ProviderCodeSignInRequired, Message: "client is not configured"}
	}

	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()

	return nil
}

// CurrentUser returns the account picked by the last successful sign-in, or nil.
func (c *Client) CurrentUser() *service.ProviderProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// GetProvider returns the provider type
func (c *Client) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func (c *Client) options() *service.ConfigureOptions {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.opts
}
