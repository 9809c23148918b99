package identity

import "time"

// Session is the provider-issued proof of a signed-in principal.
//
// The application consumes only UID and Email (for display). Token,
// RefreshToken and ExpiresAt belong to the transport adapter, which needs
// them to issue authenticated calls. A Session lives in memory for the
// lifetime of the sign-in and is never persisted.
type Session struct {
	// UID uniquely identifies the principal at the provider.
	UID string

	// Email is an optional display string; may be empty.
	Email string

	// Token is the raw ID token presented on authenticated calls.
	Token string

	// RefreshToken renews the session; opaque to this application.
	RefreshToken string

	// ExpiresAt is when the ID token stops being accepted.
	ExpiresAt time.Time
}
