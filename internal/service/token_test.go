package service

import (
	"errors"
	"testing"
	"time"

	"marketplace-api/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	u := &model.User{ID: 7, Email: "a@b.co", Username: "alice"}

	tok, expiresIn, err := issuer.Issue(u)
	require.NoError(t, err)
	require.Equal(t, "1h", expiresIn)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.ID)
	require.Equal(t, "a@b.co", claims.Email)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "7", claims.Subject)
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)
	start := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return start }

	tok, _, err := issuer.Issue(&model.User{ID: 1})
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(59 * time.Minute) }
	_, err = issuer.Verify(tok)
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(61 * time.Minute) }
	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.False(t, errors.Is(err, ErrTokenSignature))
}

func TestTokenBadSignature(t *testing.T) {
	tok, _, err := NewTokenIssuer("other", time.Hour).Issue(&model.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenIssuer("s", time.Hour).Verify(tok)
	require.ErrorIs(t, err, ErrTokenSignature)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformedAndNone(t *testing.T) {
	issuer := NewTokenIssuer("s", time.Hour)

	_, err := issuer.Verify("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Verify(none)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestFormatTTL(t *testing.T) {
	require.Equal(t, "1h", formatTTL(time.Hour))
	require.Equal(t, "24h", formatTTL(24*time.Hour))
	require.Equal(t, "90m", formatTTL(90*time.Minute))
	require.Equal(t, "45s", formatTTL(45*time.Second))
}
