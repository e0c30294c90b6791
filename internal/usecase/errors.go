package usecase

import (
	"errors"

	"wonder-rides/internal/data/repository"
)

// Sentinel errors the handler boundary maps onto HTTP statuses.
// Services wrap them with a user-facing message, e.g.
// fmt.Errorf("%w: pass has expired", ErrInvalidState).
var (
	// ErrNotFound mirrors the repository sentinel so handlers only
	// need to know about this package. 404.
	ErrNotFound = repository.ErrNotFound

	// ErrConflict covers duplicate card codes and overlapping
	// bookings. 409.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState covers business-rule violations such as
	// redeeming an inactive, exhausted or expired card. 400.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation covers malformed or missing input that slipped
	// past struct validation. 400.
	ErrValidation = errors.New("validation failed")

	// ErrCaptcha means the captcha token did not verify. 400.
	ErrCaptcha = errors.New("captcha verification failed")
)
