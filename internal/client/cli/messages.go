package cli

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"signet/internal/client/forms"
	"signet/internal/client/identity"
)

// errorMessage translates a failure into the transient text shown to the
// user. Every recognized category gets its own wording; unrecognized
// provider errors keep their message verbatim; anything else collapses to
// a generic line so internal detail never reaches the screen.
func errorMessage(err error) string {
	var verrs validation.Errors
	var unknown *identity.UnknownError

	switch {
	case errors.As(err, &verrs):
		return "Invalid input: " + verrs.Error()
	case errors.Is(err, forms.ErrSubmitInFlight):
		return "A request is already in progress."
	case errors.Is(err, identity.ErrInvalidInput):
		return "This email address is malformed."
	case errors.Is(err, identity.ErrWeakCredential):
		return "This password is too weak; pick a longer one."
	case errors.Is(err, identity.ErrAlreadyExists):
		return "An account with this email already exists."
	case errors.Is(err, identity.ErrNotFound):
		return "No account matches this email."
	case errors.Is(err, identity.ErrWrongCredential):
		return "Wrong email or password."
	case errors.Is(err, identity.ErrRequiresRecentLogin):
		return "Please sign in again before changing your password."
	case errors.Is(err, identity.ErrNoSession):
		return "You need to be signed in to do that."
	case errors.As(err, &unknown):
		return unknown.Message
	default:
		return "Something went wrong. Please try again."
	}
}
