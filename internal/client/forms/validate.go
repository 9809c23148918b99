package forms

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// emailShape accepts local-part@domain with a 2-4 letter top-level segment.
// Deliberately stricter than RFC 5321: it matches what the provider will
// accept for registration, so obviously bad addresses fail before a
// request is made.
var emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,4}$`)

// minPasswordLen applies to registration and password changes. Sign-in
// only requires a non-empty password: the provider is the judge of
// existing credentials.
const minPasswordLen = 6

// Credentials is the sign-in form input.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

// Registration is the registration form input.
type Registration struct {
	Email    string
	Password string
}

func (r Registration) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required,
			validation.Match(emailShape).Error("must be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(minPasswordLen, 0),
		),
	)
}

// PasswordChange is the change-password form input.
type PasswordChange struct {
	NewPassword string
}

func (p PasswordChange) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.NewPassword,
			validation.Required,
			validation.Length(minPasswordLen, 0),
		),
	)
}
