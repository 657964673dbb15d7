package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Kind tags an authentication failure.
type Kind string

const (
	KindConfiguration       Kind = "CONFIGURATION_ERROR"
	KindUnsupportedPlatform Kind = "UNSUPPORTED_PLATFORM"
	KindNotConfigured       Kind = "NOT_CONFIGURED"
	KindServiceUnavailable  Kind = "SERVICE_UNAVAILABLE"
	KindUserCancelled       Kind = "USER_CANCELLED"
	KindOperationInProgress Kind = "OPERATION_IN_PROGRESS"
	KindMissingCredential   Kind = "MISSING_CREDENTIAL"
	KindBackendAuthFailed   Kind = "BACKEND_AUTH_FAILED"
	KindMissingBackendUser  Kind = "MISSING_BACKEND_USER"
	KindSignOutFailed       Kind = "SIGN_OUT_FAILED"
	KindProviderFailed      Kind = "PROVIDER_FAILED"
)

// Fixed user-facing messages.
const (
	MsgNotConfigured       = "Google Sign-In is not configured"
	MsgUnsupportedPlatform = "Google Sign-In is not supported on this platform"
	MsgServiceUnavailable  = "Google Play Services is not available"
	MsgUserCancelled       = "Sign in was cancelled"
	MsgOperationInProgress = "Sign in is already in progress"
	MsgMissingCredential   = "No ID token received from Google"
	MsgMissingBackendUser  = "No user returned from Supabase"
)

var kindHTTPCodes = map[Kind]int{
	KindConfiguration:       http.StatusServiceUnavailable,
	KindUnsupportedPlatform: http.StatusNotImplemented,
	KindNotConfigured:       http.StatusServiceUnavailable,
	KindServiceUnavailable:  http.StatusServiceUnavailable,
	KindUserCancelled:       http.StatusBadRequest,
	KindOperationInProgress: http.StatusConflict,
	KindMissingCredential:   http.StatusBadRequest,
	KindBackendAuthFailed:   http.StatusUnauthorized,
	KindMissingBackendUser:  http.StatusBadGateway,
	KindSignOutFailed:       http.StatusBadGateway,
	KindProviderFailed:      http.StatusBadGateway,
}

// AuthError is a tagged authentication failure carrying its user-facing message.
type AuthError struct {
	kind    Kind
	message string
	cause   error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.message
}

// Unwrap returns the underlying cause, if any.
func (e *AuthError) Unwrap() error {
	return e.cause
}

// Kind returns the failure tag.
func (e *AuthError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *AuthError) HTTPCode() int {
	if code, ok := kindHTTPCodes[e.kind]; ok {
		return code
	}

	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *AuthError) ErrorCode() string {
	return string(e.kind)
}

// Message returns the user-friendly error message
func (e *AuthError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *AuthError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// newAuthError keeps a stack trace on the cause so logs point at the failing call.
func newAuthError(kind Kind, message string, cause error) *AuthError {
	if cause != nil {
		cause = errors.WithStack(cause)
	}

	return &AuthError{kind: kind, message: message, cause: cause}
}

func ConfigurationError(message string, cause error) *AuthError {
	return newAuthError(KindConfiguration, message, cause)
}

func UnsupportedPlatform() *AuthError {
	return newAuthError(KindUnsupportedPlatform, MsgUnsupportedPlatform, nil)
}

func NotConfigured() *AuthError {
	return newAuthError(KindNotConfigured, MsgNotConfigured, nil)
}

func ServiceUnavailable(cause error) *AuthError {
	return newAuthError(KindServiceUnavailable, MsgServiceUnavailable, cause)
}

func UserCancelled(cause error) *AuthError {
	return newAuthError(KindUserCancelled, MsgUserCancelled, cause)
}

func OperationInProgress(cause error) *AuthError {
	return newAuthError(KindOperationInProgress, MsgOperationInProgress, cause)
}

func MissingCredential() *AuthError {
	return newAuthError(KindMissingCredential, MsgMissingCredential, nil)
}

// BackendAuthFailed wraps the backend's rejection message.
func BackendAuthFailed(backendMessage string, cause error) *AuthError {
	return newAuthError(KindBackendAuthFailed, fmt.Sprintf("Supabase authentication failed: %s", backendMessage), cause)
}

func MissingBackendUser() *AuthError {
	return newAuthError(KindMissingBackendUser, MsgMissingBackendUser, nil)
}

// SignOutFailed wraps the backend's sign-out failure message.
func SignOutFailed(backendMessage string, cause error) *AuthError {
	return newAuthError(KindSignOutFailed, fmt.Sprintf("Sign out failed: %s", backendMessage), cause)
}

// ProviderFailed passes an unrecognised provider message through verbatim.
func ProviderFailed(message string, cause error) *AuthError {
	return newAuthError(KindProviderFailed, message, cause)
}

// KindOf returns the tag of the first AuthError in err's chain.
func KindOf(err error) (Kind, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.kind, true
	}

	return "", false
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return "" }

// Delivery-level errors
var (
	ErrAlertPending = NewBaseError(
		http.StatusConflict,
		"ALERT_PENDING",
		"Acknowledge the pending alert first",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"Alert not found",
	)

	ErrNotSignedIn = NewBaseError(
		http.StatusConflict,
		"NOT_SIGNED_IN",
		"No user is signed in",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
	)
)
