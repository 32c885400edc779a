// Package identity verifies session tokens and carries the verified session through context.
package identity

import (
	"context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"time"
)

var ErrUnauthorized = errors.New("unauthorized")

// Session is the verified identity of a caller
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

type claims struct {
	Session
	jwt.RegisteredClaims
}

// Verifier checks HS256 signed session tokens
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Verify returns session carried by token, any failure is reported as ErrUnauthorized
func (v *Verifier) Verify(token string) (Session, error) {
	if token == "" {
		return Session{}, errors.WithMessage(ErrUnauthorized, "empty token")
	}

	var c claims
	_, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return Session{}, errors.WithMessage(ErrUnauthorized, err.Error())
	}
	if c.Session.ID == "" {
		return Session{}, errors.WithMessage(ErrUnauthorized, "token without user id")
	}

	return c.Session, nil
}

// Issue signs session into token valid for ttl, zero ttl means no expiration.
// Sessions are issued by the identity provider in production, Issue serves tests and local tooling.
func (v *Verifier) Issue(s Session, ttl time.Duration) (string, error) {
	c := claims{Session: s}
	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
}

type key struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, key{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}
