package port

import "errors"

// Sentinel errors shared by repositories and usecases. The HTTP adapter
// maps them onto status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyInteracted  = errors.New("already interacted with this ad")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
)
