package entity

// AuthState is the authentication state owned by a single screen instance.
//
// Loading is true only while a sign-in or sign-out operation is running.
// Configured is set once at startup and never reverts to false.
type AuthState struct {
	User       *AuthenticatedUser // nil when no user is signed in
	Loading    bool
	Error      string // "" when there is no error to show
	Configured bool
}

// SignedIn reports whether a user is present.
func (s AuthState) SignedIn() bool {
	return s.User != nil
}

// HasError reports whether an error message is set.
func (s AuthState) HasError() bool {
	return s.Error != ""
}
