package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_test"
	testAudience = "app-client-1"
)

// identityProvider serves a JWKS document and signs tokens with its keys.
type identityProvider struct {
	t       *testing.T
	server  *httptest.Server
	fetches atomic.Int32

	mu   sync.Mutex
	keys map[string]*rsa.PrivateKey
	down bool
}

func newIdentityProvider(t *testing.T, kids ...string) *identityProvider {
	t.Helper()
	idp := &identityProvider{t: t, keys: make(map[string]*rsa.PrivateKey)}
	for _, kid := range kids {
		idp.addKey(kid)
	}
	idp.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idp.fetches.Add(1)
		idp.mu.Lock()
		defer idp.mu.Unlock()
		if idp.down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		set := jsonWebKeySet{}
		for kid, key := range idp.keys {
			set.Keys = append(set.Keys, jsonWebKey{
				Kid: kid,
				Kty: "RSA",
				Alg: "RS256",
				Use: "sig",
				N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			})
		}
		_ = json.NewEncoder(w).Encode(set)
	}))
	t.Cleanup(idp.server.Close)
	return idp
}

func (idp *identityProvider) addKey(kid string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(idp.t, err)
	idp.mu.Lock()
	idp.keys[kid] = key
	idp.mu.Unlock()
}

func (idp *identityProvider) setDown(down bool) {
	idp.mu.Lock()
	idp.down = down
	idp.mu.Unlock()
}

func (idp *identityProvider) sign(kid string, claims jwt.RegisteredClaims) string {
	idp.mu.Lock()
	key := idp.keys[kid]
	idp.mu.Unlock()
	if key == nil {
		// Sign with a throwaway key so the kid is unknown to the provider.
		var err error
		key, err = rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(idp.t, err)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(idp.t, err)
	return signed
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "user-123",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func newTestVerifier(idp *identityProvider) (*Verifier, *JWKSProvider) {
	provider := NewJWKSProvider(idp.server.URL, time.Hour, idp.server.Client())
	provider.minRefreshInterval = 0
	return NewVerifier(provider, testIssuer, testAudience), provider
}

func TestVerifier_ResolveUser(t *testing.T) {
	idp := newIdentityProvider(t, "key-1")
	verifier, _ := newTestVerifier(idp)

	userID, err := verifier.ResolveUser(context.Background(), idp.sign("key-1", validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	// Second verification is served from the cached key set.
	_, err = verifier.ResolveUser(context.Background(), idp.sign("key-1", validClaims()))
	require.NoError(t, err)
	assert.Equal(t, int32(1), idp.fetches.Load())
}

func TestVerifier_Rejects(t *testing.T) {
	idp := newIdentityProvider(t, "key-1")
	verifier, _ := newTestVerifier(idp)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "https://evil.example.com"

	noSubject := validClaims()
	noSubject.Subject = ""

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "empty", token: "  ", expected: ErrMissingToken},
		{name: "garbage", token: "not.a.jwt", expected: ErrInvalidToken},
		{name: "expired", token: idp.sign("key-1", expired), expected: ErrInvalidToken},
		{name: "wrong audience", token: idp.sign("key-1", wrongAudience), expected: ErrInvalidToken},
		{name: "wrong issuer", token: idp.sign("key-1", wrongIssuer), expected: ErrInvalidToken},
		{name: "missing subject", token: idp.sign("key-1", noSubject), expected: ErrInvalidToken},
		{name: "unknown kid", token: idp.sign("key-unknown", validClaims()), expected: ErrKeyNotFound},
		{name: "symmetric algorithm", token: hmacToken, expected: ErrInvalidToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userID, err := verifier.ResolveUser(context.Background(), tc.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
			assert.Empty(t, userID)
		})
	}
}

func TestVerifier_PicksUpRotatedKeys(t *testing.T) {
	idp := newIdentityProvider(t, "key-1")
	verifier, _ := newTestVerifier(idp)

	_, err := verifier.ResolveUser(context.Background(), idp.sign("key-1", validClaims()))
	require.NoError(t, err)

	idp.addKey("key-2")
	userID, err := verifier.ResolveUser(context.Background(), idp.sign("key-2", validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, int32(2), idp.fetches.Load())
}

func TestVerifier_KeySetUnavailable(t *testing.T) {
	idp := newIdentityProvider(t, "key-1")
	idp.setDown(true)
	verifier, _ := newTestVerifier(idp)

	_, err := verifier.ResolveUser(context.Background(), idp.sign("key-1", validClaims()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeySetUnavailable)

	// The provider recovers once the identity provider is back.
	idp.setDown(false)
	userID, err := verifier.ResolveUser(context.Background(), idp.sign("key-1", validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWKSProvider_ThrottlesRefreshOnUnknownKid(t *testing.T) {
	idp := newIdentityProvider(t, "key-1")
	provider := NewJWKSProvider(idp.server.URL, time.Hour, idp.server.Client())

	_, err := provider.PublicKey(context.Background(), "key-1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = provider.PublicKey(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	}
	assert.Equal(t, int32(1), idp.fetches.Load())
}

func TestJSONWebKey_RejectsNonRSA(t *testing.T) {
	_, err := jsonWebKey{Kid: "ec", Kty: "EC"}.rsaPublicKey()
	assert.Error(t, err)
}
