package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", 0)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 0)
	verifier := NewTokenManager("secret-b", 0)

	token, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", 0)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret", 0)

	claims := Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestIssueWithTTLSetsExpiry(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(3)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsWrongAlg(t *testing.T) {
	m := NewTokenManager("test-secret", 0)

	// alg "none" must never be accepted.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 9}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
