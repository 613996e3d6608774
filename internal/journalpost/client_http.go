package journalpost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TokenProvider supplies bearer tokens for archive calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// HTTPKlient talks to the archive's REST API.
type HTTPKlient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
}

func NewHTTPKlient(baseURL string, httpClient *http.Client, tokens TokenProvider) *HTTPKlient {
	return &HTTPKlient{baseURL: baseURL, httpClient: httpClient, tokens: tokens}
}

func (k *HTTPKlient) Opprett(ctx context.Context, req OpprettJournalpostRequest, forsoekFerdigstill bool) (*OpprettJournalpostResponse, error) {
	url := fmt.Sprintf("%s/journalpost?forsoekFerdigstill=%t", k.baseURL, forsoekFerdigstill)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode journalpost request: %w", err)
	}
	var resp OpprettJournalpostResponse
	if err := k.do(ctx, http.MethodPost, url, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (k *HTTPKlient) OppdaterDistribusjonsinfo(ctx context.Context, journalpostID string) error {
	url := fmt.Sprintf("%s/journalpost/%s/oppdaterDistribusjonsinfo", k.baseURL, journalpostID)
	body, _ := json.Marshal(map[string]any{"settStatusEkspedert": true})
	return k.do(ctx, http.MethodPatch, url, body, nil)
}

func (k *HTTPKlient) SettStatusAvbrutt(ctx context.Context, journalpostID string) error {
	url := fmt.Sprintf("%s/journalpost/%s/feilregistrer/settStatusAvbrutt", k.baseURL, journalpostID)
	return k.do(ctx, http.MethodPatch, url, nil, nil)
}

func (k *HTTPKlient) do(ctx context.Context, method, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build archive request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	bearer, err := k.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("archive token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("archive %s %s: status %d: %s", method, url, resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode archive response: %w", err)
		}
	}
	return nil
}
