package service

import (
	"context"

	"authscreen/internal/domain/entity"
)

// BackendUser is the user record returned by the backend auth client.
type BackendUser struct {
	ID           string
	Email        string
	UserMetadata map[string]any
	AppMetadata  map[string]any
}

// MetadataString returns the first non-empty string value among keys in UserMetadata.
func (u *BackendUser) MetadataString(keys ...string) string {
	for _, key := range keys {
		if value, ok := u.UserMetadata[key].(string); ok && value != "" {
			return value
		}
	}

	return ""
}

// AppMetadataString returns a string value from AppMetadata.
func (u *BackendUser) AppMetadataString(key string) string {
	value, _ := u.AppMetadata[key].(string)

	return value
}

// BackendSession is an application-level session issued by the backend.
type BackendSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64 // unix seconds; 0 when unknown
	User         *BackendUser
}

// BackendAuthError is a rejection reported by the backend, carrying its message.
type BackendAuthError struct {
	Status  int
	Code    string
	Message string
}

func (e *BackendAuthError) Error() string {
	return e.Message
}

// BackendAuthClient exchanges identity tokens for backend sessions and owns
// persistence of the resulting session.
type BackendAuthClient interface {
	// GetCurrentSession returns the stored valid session, or nil when there is none.
	GetCurrentSession(ctx context.Context) (*BackendSession, error)

	// SignInWithIDToken exchanges a provider identity token for a session.
	SignInWithIDToken(ctx context.Context, provider entity.ProviderType, idToken string) (*BackendSession, error)

	// SignOut ends the backend session.
	SignOut(ctx context.Context) error
}
