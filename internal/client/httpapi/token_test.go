package httpapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSessionFromToken_ReadsClaims(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "uid-9",
		"email": "user@x.com",
		"exp":   exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	sess, err := sessionFromToken(token, "refresh-9")
	require.NoError(t, err)
	require.Equal(t, "uid-9", sess.UID)
	require.Equal(t, "user@x.com", sess.Email)
	require.Equal(t, token, sess.Token)
	require.Equal(t, "refresh-9", sess.RefreshToken)
	require.WithinDuration(t, exp, sess.ExpiresAt, time.Second)
}

func TestSessionFromToken_EmailAndExpiryAreOptional(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "uid-9",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	sess, err := sessionFromToken(token, "")
	require.NoError(t, err)
	require.Equal(t, "uid-9", sess.UID)
	require.Empty(t, sess.Email)
	require.True(t, sess.ExpiresAt.IsZero())
}

func TestSessionFromToken_RejectsGarbage(t *testing.T) {
	_, err := sessionFromToken("not-a-jwt", "")
	require.Error(t, err)
}

func TestSessionFromToken_RejectsMissingSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "user@x.com",
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, err = sessionFromToken(token, "")
	require.Error(t, err)
}
