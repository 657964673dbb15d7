package handler

import (
	"log/slog"
	"net/http"

	"authscreen/internal/delivery/api/response"
	"authscreen/internal/delivery/api/validator"
	domainerrors "authscreen/internal/domain/errors"
	"authscreen/internal/domain/service"
	"authscreen/internal/infra/auth/google"
	"authscreen/internal/infra/prompt"
	"authscreen/internal/presentation/screen"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Screen *screen.Screen
	Inbox  *prompt.Inbox
	Logger *slog.Logger
}

// AuthHandler exposes the authentication screen to a remote client.
type AuthHandler struct {
	screen *screen.Screen
	inbox  *prompt.Inbox
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		screen: params.Screen,
		inbox:  params.Inbox,
		logger: params.Logger,
	}
}

// ProfilePayload is the user payload the native Google SDK returned on the device.
type ProfilePayload struct {
	ID         string `json:"id"`
	Email      string `json:"email" validate:"omitempty,email"`
	Name       string `json:"name"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Photo      string `json:"photo" validate:"omitempty,url"`
}

// SignInRequest carries the outcome of the native Google sign-in flow.
type SignInRequest struct {
	IDToken                 string          `json:"idToken"`
	Profile                 *ProfilePayload `json:"profile"`
	Cancelled               bool            `json:"cancelled"`
	HostServicesUnavailable bool            `json:"hostServicesUnavailable"`
}

// SignOutRequest carries the user's answer to the sign-out confirmation.
type SignOutRequest struct {
	Confirm bool `json:"confirm"`
}

// ScreenResponse is the screen plus the alert the client must show first, if any.
type ScreenResponse struct {
	Screen screen.Model  `json:"screen"`
	Alert  *prompt.Alert `json:"alert,omitempty"`
}

// SignOutResponse reports whether sign out ran.
type SignOutResponse struct {
	ScreenResponse
	SignedOut bool `json:"signedOut"`
}

// GetScreen returns the current screen.
func (h *AuthHandler) GetScreen(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.screenResponse())
}

// SignIn runs sign in with the credential posted by the device.
func (h *AuthHandler) SignIn(c echo.Context) error {
	if h.inbox.Blocked() {
		return response.HandleAppError(c, domainerrors.ErrAlertPending)
	}

	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid sign in input", nil)
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	ctx := google.WithCredential(c.Request().Context(), req.toCredential())
	if err := h.screen.SignIn(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.screenResponse())
}

// SignOut forwards a sign-out tap together with the confirmation answer.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if h.inbox.Blocked() {
		return response.HandleAppError(c, domainerrors.ErrAlertPending)
	}

	var req SignOutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid sign out input", nil)
	}

	ctx := prompt.WithConfirmation(c.Request().Context(), req.Confirm)
	signedOut, err := h.screen.RequestSignOut(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SignOutResponse{
		ScreenResponse: h.screenResponse(),
		SignedOut:      signedOut,
	})
}

// AcknowledgeAlert dismisses a pending alert.
func (h *AuthHandler) AcknowledgeAlert(c echo.Context) error {
	if err := h.inbox.Acknowledge(c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.screenResponse())
}

func (h *AuthHandler) screenResponse() ScreenResponse {
	resp := ScreenResponse{Screen: h.screen.Render()}
	if alert, ok := h.inbox.Pending(); ok {
		resp.Alert = &alert
	}

	return resp
}

func (r *SignInRequest) toCredential() *google.Credential {
	cred := &google.Credential{
		IDToken:                 r.IDToken,
		Cancelled:               r.Cancelled,
		HostServicesUnavailable: r.HostServicesUnavailable,
	}

	if r.Profile != nil {
		cred.Profile = &service.ProviderProfile{
			ID:         r.Profile.ID,
			Email:      r.Profile.Email,
			Name:       r.Profile.Name,
			GivenName:  r.Profile.GivenName,
			FamilyName: r.Profile.FamilyName,
			Photo:      r.Profile.Photo,
		}
	}

	return cred
}
