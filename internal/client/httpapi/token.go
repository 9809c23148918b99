package httpapi

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"signet/internal/client/identity"
)

// sessionFromToken builds a Session from the provider-issued ID token.
// The token is parsed without signature verification: issuing and verifying
// tokens is the provider's job, the client only reads identity claims
// (sub, email, exp) for display and expiry bookkeeping.
func sessionFromToken(idToken, refreshToken string) (*identity.Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("parse id token: %w", err)
	}

	uid, err := claims.GetSubject()
	if err != nil || uid == "" {
		return nil, errors.New("id token has no subject")
	}

	sess := &identity.Session{
		UID:          uid,
		Token:        idToken,
		RefreshToken: refreshToken,
	}
	if email, ok := claims["email"].(string); ok {
		sess.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	}
	return sess, nil
}
