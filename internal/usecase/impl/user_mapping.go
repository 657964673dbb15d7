package impl

import (
	"authscreen/internal/domain/entity"
	"authscreen/internal/domain/service"
)

// userFromSignIn prefers backend-confirmed identity and provider-confirmed presentation fields.
func userFromSignIn(profile *service.ProviderProfile, backendUser *service.BackendUser) *entity.AuthenticatedUser {
	return entity.NewAuthenticatedUser(entity.UserParams{
		ID:          firstNonEmpty(backendUser.ID, profile.ID),
		Email:       firstNonEmpty(backendUser.Email, profile.Email),
		DisplayName: firstNonEmpty(profile.Name, backendUser.MetadataString("full_name", "name")),
		PhotoURL:    firstNonEmpty(profile.Photo, backendUser.MetadataString("avatar_url", "picture")),
		Provider:    entity.ProviderTypeGoogle,
	})
}

// userFromSession builds a user from restored session claims.
func userFromSession(backendUser *service.BackendUser) *entity.AuthenticatedUser {
	return entity.NewAuthenticatedUser(entity.UserParams{
		ID:          backendUser.ID,
		Email:       backendUser.Email,
		DisplayName: backendUser.MetadataString("full_name", "name"),
		PhotoURL:    backendUser.MetadataString("avatar_url", "picture"),
		Provider:    entity.ProviderType(backendUser.AppMetadataString("provider")),
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
