package entity

// ProviderType identifies the identity provider a user signed in with.
type ProviderType string

const (
	// ProviderTypeGoogle is the native Google Sign-In provider.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeGoogle:
		return true
	default:
		return false
	}
}
