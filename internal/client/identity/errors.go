package identity

import "errors"

// Sentinel errors for the known classes of auth failure. The transport
// adapter maps provider error codes onto these; forms and screens match
// them with errors.Is to pick display text.
var (
	// ErrInvalidInput: the provider rejected the request payload
	// (e.g. a malformed email address).
	ErrInvalidInput = errors.New("invalid input")

	// ErrWeakCredential: the proposed password does not meet the
	// provider's strength policy.
	ErrWeakCredential = errors.New("weak credential")

	// ErrAlreadyExists: an account with this email is already registered.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrNotFound: no account matches the given email.
	ErrNotFound = errors.New("account not found")

	// ErrWrongCredential: the password does not match the account.
	ErrWrongCredential = errors.New("wrong credential")

	// ErrRequiresRecentLogin: the provider judged the session too old for
	// a credential update and demands re-authentication first. This is
	// provider policy; the session may still be valid for reads.
	ErrRequiresRecentLogin = errors.New("requires recent login")

	// ErrNoSession: a local precondition failure for operations that need
	// an active session. No request is issued.
	ErrNoSession = errors.New("no active session")
)

// UnknownError carries a provider failure that maps onto none of the
// sentinel errors above. Message is preserved verbatim for display so new
// provider codes do not silently lose information.
type UnknownError struct {
	Code    string
	Message string
}

func (e *UnknownError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unknown identity provider error"
}
