package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrMissingToken is returned when no bearer token was supplied.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken wraps parsing and claim validation failures.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrKeyNotFound means the token's kid is not in the key set.
	ErrKeyNotFound = errors.New("signing key not found")
	// ErrKeySetUnavailable means the key set could not be fetched right now.
	ErrKeySetUnavailable = errors.New("key set unavailable")
)

// Verifier validates RS256 tokens issued by the user pool and maps them to a
// stable user ID (the "sub" claim).
type Verifier struct {
	keys     KeyProvider
	issuer   string
	audience string
}

func NewVerifier(keys KeyProvider, issuer, audience string) *Verifier {
	return &Verifier{keys: keys, issuer: issuer, audience: audience}
}

// ResolveUser verifies the token and returns its subject.
func (v *Verifier) ResolveUser(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: token has no kid", ErrKeyNotFound)
		}
		return v.keys.PublicKey(ctx, kid)
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		if errors.Is(err, ErrKeySetUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}

	if !claims.VerifyIssuer(v.issuer, true) {
		return "", fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}
	if !claims.VerifyAudience(v.audience, true) {
		return "", fmt.Errorf("%w: unexpected audience", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	return claims.Subject, nil
}
