package domain

import "errors"

// Validation errors — rejected before touching storage
var (
	ErrOrderEmpty      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be a positive integer")
	ErrInvalidStatus   = errors.New("unknown order status")
	ErrInvalidRole     = errors.New("invalid user role")
)

// Conflict errors
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already registered")
	ErrVersionConflict = errors.New("concurrent update conflict")
)

// Authentication errors. ErrUnauthenticated and ErrInvalidCredentials are
// deliberately uniform: callers must not be able to tell which check failed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
)

// Token decode errors. Internally distinguishable for logging; all collapse
// to ErrUnauthenticated at the guard boundary.
var (
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenUnsupported      = errors.New("unsupported token format")
	ErrTokenInvalid          = errors.New("invalid token")
)

// Not-found errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrItemNotFound  = errors.New("inventory item not found")
	ErrOrderNotFound = errors.New("order not found")
)

// ErrStorageUnavailable marks a storage timeout or outage. Safe for the
// caller to retry; never a terminal domain outcome.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IsTransient reports whether err is retryable rather than terminal.
func IsTransient(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
