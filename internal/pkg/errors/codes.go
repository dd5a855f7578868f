package errors

import "net/http"

// Error code constants. Errors carry code + message; handlers never leak
// internal error text to clients.

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeWeakPassword     = "WEAK_PASSWORD"
)

// Credential error codes.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountLocked      = "ACCOUNT_LOCKED"
	CodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeUserNotFound       = "USER_NOT_FOUND"
)

// Session token error codes.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Federated identity error codes.
const (
	CodeUnsupportedProvider = "UNSUPPORTED_PROVIDER"
	CodeMissingClaim        = "MISSING_CLAIM"
	CodeInvalidIssuer       = "INVALID_ISSUER"
	CodeInvalidAudience     = "INVALID_AUDIENCE"
	CodeEmailNotVerified    = "EMAIL_NOT_VERIFIED"
	CodeDomainNotAllowed    = "DOMAIN_NOT_ALLOWED"
)

// Reset/verification token error codes.
const (
	CodeResetTokenInvalid        = "RESET_TOKEN_INVALID"
	CodeVerificationTokenInvalid = "VERIFICATION_TOKEN_INVALID"
)

// Convenience constructors using predefined codes.

// ErrInvalidCredentials is the generic bad email/password error. The same
// code and message are returned whether the account exists or not, so the
// endpoint cannot be used to enumerate users.
func ErrInvalidCredentials() *AppError {
	return &AppError{
		Code:       CodeInvalidCredentials,
		Message:    "invalid email or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// ErrAccountLocked reports an active lockout window.
func ErrAccountLocked() *AppError {
	return &AppError{
		Code:       CodeAccountLocked,
		Message:    "account temporarily locked due to repeated failed logins",
		HTTPStatus: http.StatusLocked,
	}
}

// ErrAccountDeactivated reports a disabled account.
func ErrAccountDeactivated() *AppError {
	return &AppError{
		Code:       CodeAccountDeactivated,
		Message:    "account is deactivated",
		HTTPStatus: http.StatusForbidden,
	}
}

// ErrDuplicateEmail reports a registration against an existing email.
func ErrDuplicateEmail() *AppError {
	return &AppError{
		Code:       CodeDuplicateEmail,
		Message:    "an account with this email already exists",
		HTTPStatus: http.StatusConflict,
	}
}

// ErrWeakPassword reports a password strength policy violation.
func ErrWeakPassword(reason string) *AppError {
	return &AppError{
		Code:       CodeWeakPassword,
		Message:    reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrUnauthenticated is returned for absent, malformed, or expired session
// tokens.
func ErrUnauthenticated() *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    "authentication required",
		HTTPStatus: http.StatusUnauthorized,
	}
}
