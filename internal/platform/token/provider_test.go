package token

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lagJWT builds an unsigned JWT carrying the given claims; the provider only
// reads exp, it never verifies.
func lagJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	encode := func(v any) string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := encode(map[string]string{"alg": "none", "typ": "JWT"})
	return header + "." + encode(claims) + "."
}

type sourceFake struct {
	tokens []string
	err    error
	kall   int
}

func (s *sourceFake) FetchToken(context.Context) (string, error) {
	s.kall++
	if s.err != nil {
		return "", s.err
	}
	return s.tokens[(s.kall-1)%len(s.tokens)], nil
}

func TestCachedProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("reuses a token until the leeway window", func(t *testing.T) {
		tok := lagJWT(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
		source := &sourceFake{tokens: []string{tok}}
		p := NewCachedProvider(source, 30*time.Second)

		first, err := p.Token(ctx)
		require.NoError(t, err)
		second, err := p.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, source.kall)
	})

	t.Run("refreshes a token close to expiry", func(t *testing.T) {
		nesten := lagJWT(t, map[string]any{"exp": time.Now().Add(10 * time.Second).Unix()})
		fersk := lagJWT(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
		source := &sourceFake{tokens: []string{nesten, fersk}}
		p := NewCachedProvider(source, 30*time.Second)

		_, err := p.Token(ctx)
		require.NoError(t, err)
		got, err := p.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, fersk, got)
		assert.Equal(t, 2, source.kall)
	})

	t.Run("missing exp claim is an error", func(t *testing.T) {
		source := &sourceFake{tokens: []string{lagJWT(t, map[string]any{"sub": "srv"})}}
		p := NewCachedProvider(source, 0)
		_, err := p.Token(ctx)
		assert.ErrorContains(t, err, "exp")
	})

	t.Run("source failure propagates", func(t *testing.T) {
		p := NewCachedProvider(&sourceFake{err: errors.New("idp down")}, 0)
		_, err := p.Token(ctx)
		assert.ErrorContains(t, err, "idp down")
	})
}

func TestClientCredentialsSource(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the grant and returns the access token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "journalforing", r.PostForm.Get("client_id"))
			assert.Equal(t, "api://dokarkiv/.default", r.PostForm.Get("scope"))
			fmt.Fprint(w, `{"access_token":"tok123","token_type":"Bearer"}`)
		}))
		defer srv.Close()

		s := &ClientCredentialsSource{
			HTTPClient:   srv.Client(),
			TokenURL:     srv.URL,
			ClientID:     "journalforing",
			ClientSecret: "hemmelig",
			Scope:        "api://dokarkiv/.default",
		}
		tok, err := s.FetchToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok123", tok)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		s := &ClientCredentialsSource{HTTPClient: srv.Client(), TokenURL: srv.URL}
		_, err := s.FetchToken(ctx)
		assert.ErrorContains(t, err, "unexpected status 401")
	})

	t.Run("empty access token is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{}`)
		}))
		defer srv.Close()

		s := &ClientCredentialsSource{HTTPClient: srv.Client(), TokenURL: srv.URL}
		_, err := s.FetchToken(ctx)
		assert.ErrorContains(t, err, "missing access_token")
	})
}
