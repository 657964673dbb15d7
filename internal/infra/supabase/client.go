// Package supabase implements the backend auth client against the Supabase auth (GoTrue) REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authscreen/config"
	deliverycontext "authscreen/internal/delivery/context"
	"authscreen/internal/domain/entity"
	"authscreen/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

const (
	tokenPath  = "/auth/v1/token"
	userPath   = "/auth/v1/user"
	logoutPath = "/auth/v1/logout"

	grantIDToken      = "id_token"
	grantRefreshToken = "refresh_token"
)

// ClientParams holds dependencies for the Supabase client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Bucket *blob.Bucket
	Logger *slog.Logger
}

// Client is a GoTrue REST client that persists the session it obtains.
type Client struct {
	baseURL string
	anonKey string
	leeway  time.Duration
	http    *http.Client
	store   *sessionStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewClient creates a new Supabase auth client
func NewClient(params ClientParams) service.BackendAuthClient {
	return newClient(params.Config.Supabase, params.Bucket, params.Logger)
}

func newClient(cfg *config.SupabaseConfig, bucket *blob.Bucket, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		anonKey: cfg.AnonKey,
		leeway:  cfg.RefreshLeeway,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		store:   newSessionStore(bucket, cfg.SessionKey),
		logger:  logger,
		now:     time.Now,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// GetCurrentSession returns the stored session, refreshing it when the access
// token is about to expire. A session the server no longer accepts is dropped.
func (c *Client) GetCurrentSession(ctx context.Context) (*service.BackendSession, error) {
	stored, err := c.store.load(ctx)
	if err != nil {
		return nil, err
	}

	if stored == nil || stored.AccessToken == "" {
		return nil, nil
	}

	if stored.ExpiresAt == 0 {
		stored.ExpiresAt = accessTokenExpiry(stored.AccessToken)
	}

	if stored.ExpiresAt == 0 {
		return c.validateSession(ctx, stored)
	}

	if c.now().Add(c.leeway).Unix() < stored.ExpiresAt {
		return stored.toDomain(), nil
	}

	refreshed, err := c.refresh(ctx, stored)
	if err != nil {
		return nil, c.dropOnRejection(ctx, err)
	}

	c.log(ctx).Debug("Supabase session refreshed")

	return refreshed.toDomain(), nil
}

// validateSession asks the server for the user when the expiry is unknown.
func (c *Client) validateSession(ctx context.Context, stored *sessionModel) (*service.BackendSession, error) {
	user, err := c.getUser(ctx, stored.AccessToken)
	if err != nil {
		return nil, c.dropOnRejection(ctx, err)
	}

	stored.User = user
	if err := c.store.save(ctx, stored); err != nil {
		return nil, err
	}

	return stored.toDomain(), nil
}

// dropOnRejection clears the stored session when the server rejected it and
// reports no session. Transport failures are returned as-is.
func (c *Client) dropOnRejection(ctx context.Context, err error) error {
	var backendErr *service.BackendAuthError
	if !errors.As(err, &backendErr) {
		return err
	}

	c.log(ctx).Warn("Stored Supabase session rejected, removing it", slog.String("reason", backendErr.Message))

	return c.store.remove(ctx)
}

// SignInWithIDToken exchanges a provider ID token for a Supabase session.
func (c *Client) SignInWithIDToken(ctx context.Context, provider entity.ProviderType, idToken string) (*service.BackendSession, error) {
	body := map[string]string{
		"provider": provider.String(),
		"id_token": idToken,
	}

	session, err := c.grant(ctx, grantIDToken, body)
	if err != nil {
		return nil, err
	}

	// A session without a user is rejected by the caller, so it must not
	// replace the stored one.
	if session.AccessToken != "" && session.User != nil {
		if err := c.store.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return session.toDomain(), nil
}

// getUser fetches the user the access token belongs to.
func (c *Client) getUser(ctx context.Context, accessToken string) (*userModel, error) {
	var user userModel
	if err := c.do(ctx, http.MethodGet, userPath, accessToken, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// SignOut revokes the stored session and forgets it. Without a stored
// session there is nothing to revoke.
func (c *Client) SignOut(ctx context.Context) error {
	stored, err := c.store.load(ctx)
	if err != nil {
		return err
	}

	if stored == nil || stored.AccessToken == "" {
		return c.store.remove(ctx)
	}

	err = c.do(ctx, http.MethodPost, logoutPath, stored.AccessToken, nil, nil)
	if err != nil && !sessionAlreadyGone(err) {
		return err
	}

	return c.store.remove(ctx)
}

// refresh exchanges the stored refresh token and stores the new session. The
// stored user is kept when the response omits it.
func (c *Client) refresh(ctx context.Context, stored *sessionModel) (*sessionModel, error) {
	if stored.RefreshToken == "" {
		return nil, &service.BackendAuthError{Status: http.StatusBadRequest, Message: "Refresh token is missing"}
	}

	session, err := c.grant(ctx, grantRefreshToken, map[string]string{"refresh_token": stored.RefreshToken})
	if err != nil {
		return nil, err
	}

	if session.AccessToken == "" {
		return nil, &service.BackendAuthError{Status: http.StatusBadGateway, Message: "No access token returned"}
	}
	if session.User == nil {
		session.User = stored.User
	}

	if err := c.store.save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// grant runs a token grant. Callers decide whether the result is stored.
func (c *Client) grant(ctx context.Context, grantType string, body map[string]string) (*sessionModel, error) {
	var session sessionModel
	if err := c.do(ctx, http.MethodPost, tokenPath+"?grant_type="+grantType, "", body, &session); err != nil {
		return nil, err
	}

	if session.ExpiresAt == 0 && session.ExpiresIn > 0 {
		session.ExpiresAt = c.now().Unix() + session.ExpiresIn
	}
	if session.ExpiresAt == 0 {
		session.ExpiresAt = accessTokenExpiry(session.AccessToken)
	}

	return &session, nil
}

// do sends a request and decodes a JSON response into out when out is not nil.
// Non-2xx responses become *service.BackendAuthError.
func (c *Client) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	bearer := c.anonKey
	if accessToken != "" {
		bearer = accessToken
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "supabase request %s %s failed", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseErrorResponse(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

func parseErrorResponse(status int, body []byte) *service.BackendAuthError {
	authErr := &service.BackendAuthError{Status: status}

	var model errorModel
	if err := json.Unmarshal(body, &model); err == nil {
		authErr.Code = model.ErrorCode
		authErr.Message = model.message()
	}

	if authErr.Message == "" {
		authErr.Message = strings.TrimSpace(string(body))
	}
	if authErr.Message == "" {
		authErr.Message = http.StatusText(status)
	}

	return authErr
}

// sessionAlreadyGone reports logout failures that mean the server has no session to end.
func sessionAlreadyGone(err error) bool {
	var backendErr *service.BackendAuthError
	if !errors.As(err, &backendErr) {
		return false
	}

	switch backendErr.Status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}

	return false
}
