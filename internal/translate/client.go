// Package translate calls the external translation service. The service is
// treated as a black box: one best-effort request per call, no retries.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnavailable covers every gateway failure: transport errors, non-2xx
// responses, and responses without a translation. The underlying cause is
// wrapped for server-side logging and must not reach clients.
var ErrUnavailable = errors.New("translation unavailable")

// Translator is what the HTTP handlers depend on; tests stub it.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

type Client struct {
	APIKey  string
	APIHost string
	BaseURL string // overridable for tests; defaults to https://<APIHost>
	HTTP    *http.Client
}

func NewClient(apiKey, apiHost string) *Client {
	return &Client{
		APIKey:  apiKey,
		APIHost: apiHost,
		BaseURL: "https://" + apiHost,
		HTTP:    http.DefaultClient,
	}
}

type request struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type response struct {
	Translations struct {
		Translation string `json:"translation"`
	} `json:"translations"`
}

// Translate posts the triple to the provider and returns the translated text.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	body, err := json.Marshal(request{Text: text, Source: source, Target: target})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", c.APIHost)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if out.Translations.Translation == "" {
		return "", fmt.Errorf("%w: empty translation in response", ErrUnavailable)
	}
	return out.Translations.Translation, nil
}
