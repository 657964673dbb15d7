package google

import (
	"slices"
	"time"

	"authscreen/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// IDTokenClaims represents the claims in a Google ID token
type IDTokenClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// parseIDToken decodes the token payload without checking the signature.
// The backend verifies the signature when it exchanges the token.
func parseIDToken(token string) (*IDTokenClaims, error) {
	claims := &IDTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	return claims, nil
}

// verifyTokenClaims checks issuer, audience and expiry.
func verifyTokenClaims(claims *IDTokenClaims, issuers []string, audiences []string, now time.Time) error {
	if !slices.Contains(issuers, claims.Issuer) {
		return errors.Errorf("invalid issuer: %s", claims.Issuer)
	}

	if !slices.ContainsFunc(audiences, func(aud string) bool {
		return aud != "" && slices.Contains(claims.Audience, aud)
	}) {
		return errors.Errorf("invalid audience: %v", []string(claims.Audience))
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		return errors.Errorf("token expired at %s", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return nil
}

// mergeProfile fills gaps in the native payload from token claims. The token
// subject always wins for the ID.
func mergeProfile(native *service.ProviderProfile, claims *IDTokenClaims) *service.ProviderProfile {
	merged := service.ProviderProfile{}
	if native != nil {
		merged = *native
	}

	if claims == nil {
		return &merged
	}

	if claims.Subject != "" {
		merged.ID = claims.Subject
	}
	if merged.Email == "" {
		merged.Email = claims.Email
	}
	if merged.Name == "" {
		merged.Name = claims.Name
	}
	if merged.GivenName == "" {
		merged.GivenName = claims.GivenName
	}
	if merged.FamilyName == "" {
		merged.FamilyName = claims.FamilyName
	}
	if merged.Photo == "" {
		merged.Photo = claims.Picture
	}

	return &merged
}
