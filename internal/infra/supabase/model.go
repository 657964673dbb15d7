package supabase

import (
	"authscreen/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// sessionModel is the GoTrue token response, also used as the stored form.
type sessionModel struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type,omitempty"`
	ExpiresIn    int64      `json:"expires_in,omitempty"`
	ExpiresAt    int64      `json:"expires_at,omitempty"`
	RefreshToken string     `json:"refresh_token"`
	User         *userModel `json:"user,omitempty"`
}

type userModel struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
}

// errorModel covers the error shapes GoTrue has used across versions.
type errorModel struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
	ErrorCode        string `json:"error_code"`
}

func (e errorModel) message() string {
	for _, m := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if m != "" {
			return m
		}
	}

	return ""
}

func (m *sessionModel) toDomain() *service.BackendSession {
	return &service.BackendSession{
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		ExpiresAt:    m.ExpiresAt,
		User:         m.User.toDomain(),
	}
}

func (u *userModel) toDomain() *service.BackendUser {
	if u == nil {
		return nil
	}

	return &service.BackendUser{
		ID:           u.ID,
		Email:        u.Email,
		UserMetadata: u.UserMetadata,
		AppMetadata:  u.AppMetadata,
	}
}

// accessTokenExpiry reads exp from the access token. Returns 0 when it cannot.
func accessTokenExpiry(token string) int64 {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}

	if claims.ExpiresAt == nil {
		return 0
	}

	return claims.ExpiresAt.Unix()
}
