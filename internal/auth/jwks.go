package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"alcyxob/fitness-tracker/internal/observability"
)

const (
	keySetCacheKey = "jwks"
	// freecache's minimum size; a key set is a few KB.
	keySetCacheSize = 512 * 1024
	// Unknown kids trigger a refetch at most this often.
	defaultMinRefreshInterval = time.Minute
	defaultFetchTimeout       = 5 * time.Second
)

// KeyProvider resolves the public key a token was signed with.
type KeyProvider interface {
	PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

func (s jsonWebKeySet) find(kid string) (jsonWebKey, bool) {
	for _, k := range s.Keys {
		if k.Kid == kid {
			return k, true
		}
	}
	return jsonWebKey{}, false
}

func (k jsonWebKey) rsaPublicKey() (*rsa.PublicKey, error) {
	if k.Kty != "RSA" {
		return nil, fmt.Errorf("unsupported key type %q", k.Kty)
	}
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	exponent := new(big.Int).SetBytes(e)
	if !exponent.IsInt64() || exponent.Int64() < 3 {
		return nil, errors.New("invalid exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: int(exponent.Int64())}, nil
}

// JWKSProvider fetches the identity provider's JSON Web Key Set and keeps the
// raw document in a TTL cache shared by all requests.
type JWKSProvider struct {
	url    string
	client *http.Client
	cache  *freecache.Cache
	ttl    time.Duration

	mu                 sync.Mutex
	lastFetch          time.Time
	minRefreshInterval time.Duration
}

// NewJWKSProvider creates a provider for the key set published at url.
// A nil client gets a default one with a short timeout.
func NewJWKSProvider(url string, ttl time.Duration, client *http.Client) *JWKSProvider {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWKSProvider{
		url:                url,
		client:             client,
		cache:              freecache.NewCache(keySetCacheSize),
		ttl:                ttl,
		minRefreshInterval: defaultMinRefreshInterval,
	}
}

// PublicKey returns the RSA key with the given kid. An unknown kid forces one
// refetch so that rotated keys are picked up before the cache expires.
func (p *JWKSProvider) PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	set, err := p.keySet(ctx, false)
	if err != nil {
		return nil, err
	}
	key, ok := set.find(kid)
	if !ok {
		if set, err = p.keySet(ctx, true); err != nil {
			return nil, err
		}
		if key, ok = set.find(kid); !ok {
			return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
		}
	}
	return key.rsaPublicKey()
}

func (p *JWKSProvider) keySet(ctx context.Context, refresh bool) (jsonWebKeySet, error) {
	if !refresh {
		if raw, err := p.cache.Get([]byte(keySetCacheKey)); err == nil {
			return decodeKeySet(raw)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	raw, err := p.cache.Get([]byte(keySetCacheKey))
	fresh := err == nil && time.Since(p.lastFetch) < p.minRefreshInterval
	if err == nil && (!refresh || fresh) {
		// Another request refreshed the set while we waited, or a refresh is throttled.
		return decodeKeySet(raw)
	}

	raw, err = p.fetch(ctx)
	observability.RecordKeySetFetch(err)
	if err != nil {
		log.Errorf("jwks fetch from %s: %s", p.url, err)
		return jsonWebKeySet{}, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
	}
	set, err := decodeKeySet(raw)
	if err != nil {
		return jsonWebKeySet{}, err
	}

	p.lastFetch = time.Now()
	if err := p.cache.Set([]byte(keySetCacheKey), raw, int(p.ttl.Seconds())); err != nil {
		log.Warnf("jwks cache set: %s", err)
	}
	return set, nil
}

func (p *JWKSProvider) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func decodeKeySet(raw []byte) (jsonWebKeySet, error) {
	var set jsonWebKeySet
	if err := json.Unmarshal(raw, &set); err != nil {
		return jsonWebKeySet{}, fmt.Errorf("%w: decode: %v", ErrKeySetUnavailable, err)
	}
	return set, nil
}
