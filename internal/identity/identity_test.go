package identity

import (
	"context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var session = Session{ID: "u1", Name: "Alice", Username: "alice", Image: "alice.png"}

func TestVerify(t *testing.T) {
	v := NewVerifier("secret")

	token, err := v.Issue(session, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, session, got)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewVerifier("other").Issue(session, 0)
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier("secret")

	c := claims{Session: session}
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_WrongMethod(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims{Session: session}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_Malformed(t *testing.T) {
	v := NewVerifier("secret")

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := v.Verify(token)
		require.ErrorIs(t, err, ErrUnauthorized, token)
	}
}

func TestVerify_NoUserID(t *testing.T) {
	v := NewVerifier("secret")

	token, err := v.Issue(Session{Name: "nobody"}, 0)
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	require.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), session))
	require.True(t, ok)
	require.Equal(t, session, got)
}
