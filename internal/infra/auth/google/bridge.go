package google

import (
	"context"

	"authscreen/internal/domain/service"
)

// Credential is what the native sign-in UI hands back.
type Credential struct {
	IDToken                 string
	Profile                 *service.ProviderProfile
	Cancelled               bool
	HostServicesUnavailable bool
}

// Bridge connects the client to the native sign-in UI running on the device.
type Bridge interface {
	// HostServicesAvailable reports whether the device services the flow needs are present.
	HostServicesAvailable(ctx context.Context) bool

	// RequestCredential shows the account chooser and returns the result. A nil
	// credential means the UI returned nothing.
	RequestCredential(ctx context.Context) (*Credential, error)
}

type credentialKey struct{}

// WithCredential attaches the credential the device obtained to ctx.
func WithCredential(ctx context.Context, cred *Credential) context.Context {
	return context.WithValue(ctx, credentialKey{}, cred)
}

func credentialFromContext(ctx context.Context) *Credential {
	cred, _ := ctx.Value(credentialKey{}).(*Credential)

	return cred
}

// RequestBridge serves credentials that a remote device posted with the
// current request, see WithCredential.
type RequestBridge struct{}

// NewRequestBridge creates a RequestBridge.
func NewRequestBridge() Bridge {
	return RequestBridge{}
}

// HostServicesAvailable is true unless the device said otherwise.
func (RequestBridge) HostServicesAvailable(ctx context.Context) bool {
	cred := credentialFromContext(ctx)

	return cred == nil || !cred.HostServicesUnavailable
}

// RequestCredential returns the credential attached to ctx, or nil.
func (RequestBridge) RequestCredential(ctx context.Context) (*Credential, error) {
	return credentialFromContext(ctx), nil
}
