package oidc

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"
)

// jwksCache caches the provider's signing keys with a refresh TTL so a
// verification does not cost a network round-trip per token.
type jwksCache struct {
	jwksURL  string
	client   *http.Client
	cacheTTL time.Duration

	mu        sync.RWMutex
	keys      map[string]*jwk
	fetchedAt time.Time
}

// jwk is a JSON Web Key (RSA; Google signs ID tokens with RS256).
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDoc struct {
	Keys []jwk `json:"keys"`
}

func (c *jwksCache) lookup(kid string) (*jwk, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.keys == nil {
		return nil, false
	}
	k, ok := c.keys[kid]
	return k, ok
}

func (c *jwksCache) isStale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys == nil || time.Since(c.fetchedAt) > c.cacheTTL
}

func (c *jwksCache) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.jwksURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create JWKS request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("JWKS returned %d: %s", resp.StatusCode, string(body))
	}

	var doc jwksDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode JWKS: %w", err)
	}

	keys := make(map[string]*jwk, len(doc.Keys))
	for i := range doc.Keys {
		k := doc.Keys[i]
		if k.Use == "sig" || k.Use == "" {
			keys[k.Kid] = &k
		}
	}

	c.mu.Lock()
	c.keys = keys
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return nil
}

// key retrieves a signing key by kid, refreshing the cache if needed.
func (c *jwksCache) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if !c.isStale() {
		if k, ok := c.lookup(kid); ok {
			return k.publicKey()
		}
	}

	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	k, ok := c.lookup(kid)
	if !ok {
		return nil, fmt.Errorf("key %q not found in JWKS", kid)
	}
	return k.publicKey()
}

// publicKey converts the JWK to an *rsa.PublicKey.
func (k *jwk) publicKey() (*rsa.PublicKey, error) {
	if k.Kty != "RSA" {
		return nil, fmt.Errorf("unsupported key type: %s", k.Kty)
	}
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode RSA N: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode RSA E: %w", err)
	}

	n := new(big.Int).SetBytes(nBytes)
	e := new(big.Int).SetBytes(eBytes)

	return &rsa.PublicKey{
		N: n,
		E: int(e.Int64()),
	}, nil
}

// verifyRS256 checks an RS256 signature over the token's signing input.
func verifyRS256(rawToken string, key *rsa.PublicKey) error {
	parts := strings.Split(rawToken, ".")
	if len(parts) != 3 {
		return fmt.Errorf("malformed token")
	}

	signingInput := parts[0] + "." + parts[1]
	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(signingInput))
	return rsa.VerifyPKCS1v15(key, crypto.SHA256, h.Sum(nil), signature)
}

// decodeSegment decodes a base64url JWT segment into a claim map.
func decodeSegment(seg string) (map[string]interface{}, error) {
	data, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
