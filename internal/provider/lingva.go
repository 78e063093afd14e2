package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

const (
	lingvaAPIURL  = "https://lingva.ml/api/v1"
	lingvaTimeout = 8 * time.Second
)

// Lingva queries the Lingva Translate API, a privacy frontend to Google
// Translate.
type Lingva struct {
	endpoint   string
	httpClient *http.Client
}

// lingvaResponse represents the API response structure.
type lingvaResponse struct {
	Translation string `json:"translation"`
}

// NewLingva creates a Lingva translation provider.
func NewLingva() *Lingva {
	return &Lingva{
		endpoint: lingvaAPIURL,
		httpClient: &http.Client{
			Timeout: lingvaTimeout,
		},
	}
}

// Name returns the provider name.
func (l *Lingva) Name() string {
	return "lingva"
}

// Translate requests a translation. Lingva encodes the whole request in the
// URL path: /api/v1/{source}/{target}/{text}.
func (l *Lingva) Translate(ctx context.Context, text string, src, tgt language.Language) (string, error) {
	reqURL := fmt.Sprintf("%s/%s/%s/%s", l.endpoint, src, tgt, url.PathEscape(text))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &RateLimitError{Provider: l.Name(), RetryAfter: 60}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &Error{Provider: l.Name(), Code: fmt.Sprintf("%d", resp.StatusCode), Message: string(body)}
	}

	var lvResp lingvaResponse
	if err := json.NewDecoder(resp.Body).Decode(&lvResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	out := strings.TrimSpace(lvResp.Translation)
	if out == "" {
		return "", &Error{Provider: l.Name(), Message: "no translation in response"}
	}
	return out, nil
}
