package httpapi

import "signet/internal/client/identity"

// apiError is the provider's failure envelope.
type apiError struct {
	Err struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorsByCode is the single place provider error codes meet the local
// taxonomy. String-matching codes is brittle, so the table is keyed by the
// exact code and everything unrecognized falls through to UnknownError
// instead of being guessed at.
var errorsByCode = map[string]error{
	"invalid-email":         identity.ErrInvalidInput,
	"weak-password":         identity.ErrWeakCredential,
	"email-already-in-use":  identity.ErrAlreadyExists,
	"user-not-found":        identity.ErrNotFound,
	"wrong-password":        identity.ErrWrongCredential,
	"requires-recent-login": identity.ErrRequiresRecentLogin,
}

func mapError(code, message string) error {
	if err, ok := errorsByCode[code]; ok {
		return err
	}
	return &identity.UnknownError{Code: code, Message: message}
}
