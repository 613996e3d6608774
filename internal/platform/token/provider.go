// Package token provides cached bearer tokens for outbound collaborator
// calls. Tokens are machine-to-machine client-credentials tokens; the cache
// reuses a token until its exp claim is close.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Source fetches a fresh token from the identity provider.
type Source interface {
	FetchToken(ctx context.Context) (string, error)
}

// ClientCredentialsSource fetches tokens with the OAuth2 client-credentials
// grant.
type ClientCredentialsSource struct {
	HTTPClient   *http.Client
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
}

func (s *ClientCredentialsSource) FetchToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.ClientID},
		"client_secret": {s.ClientSecret},
		"scope":         {s.Scope},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch token: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}
	return body.AccessToken, nil
}

// CachedProvider hands out a valid bearer token, refreshing when the cached
// token's exp claim is within the leeway window.
type CachedProvider struct {
	source Source
	leeway time.Duration

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewCachedProvider(source Source, leeway time.Duration) *CachedProvider {
	if leeway <= 0 {
		leeway = 30 * time.Second
	}
	return &CachedProvider{source: source, leeway: leeway}
}

// Token returns a cached token or fetches a fresh one.
func (p *CachedProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.expires.Add(-p.leeway)) {
		return p.token, nil
	}

	fresh, err := p.source.FetchToken(ctx)
	if err != nil {
		return "", err
	}
	expires, err := tokenExpiry(fresh)
	if err != nil {
		return "", err
	}

	p.token = fresh
	p.expires = expires
	return fresh, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// token is consumed by the collaborator, not trusted locally.
func tokenExpiry(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token missing exp claim")
	}
	return exp.Time, nil
}
