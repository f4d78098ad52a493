package usecase

import "errors"

// Error taxonomy shared by all services. Wrong email, wrong OTP and wrong
// reset token all surface as ErrInvalidCredential so responses never reveal
// which half of the pair failed; expiry is a separate, non-sensitive kind.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrExpired           = errors.New("credential expired")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrEmailTaken        = errors.New("email already in use")
	ErrPaymentSignature  = errors.New("payment signature mismatch")
)

// serviceError pairs a taxonomy kind with a caller-facing message, so
// handlers can match with errors.Is while returning the endpoint's own
// wording.
type serviceError struct {
	kind    error
	message string
}

func (e *serviceError) Error() string { return e.message }

func (e *serviceError) Unwrap() error { return e.kind }

func newError(kind error, message string) error {
	return &serviceError{kind: kind, message: message}
}
