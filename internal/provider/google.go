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
	googleAPIURL  = "https://translate.googleapis.com/translate_a/single"
	googleTimeout = 8 * time.Second
)

// Google queries the free Google Translate gtx endpoint.
type Google struct {
	endpoint   string
	httpClient *http.Client
}

// NewGoogle creates a Google translation provider.
func NewGoogle() *Google {
	return &Google{
		endpoint: googleAPIURL,
		httpClient: &http.Client{
			Timeout: googleTimeout,
		},
	}
}

// Name returns the provider name.
func (g *Google) Name() string {
	return "google"
}

// Translate requests a translation from the gtx endpoint. The response is a
// nested JSON array whose first element holds the translated segments.
func (g *Google) Translate(ctx context.Context, text string, src, tgt language.Language) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", string(src))
	params.Set("tl", string(tgt))
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, "GET", g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &RateLimitError{Provider: g.Name(), RetryAfter: 60}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &Error{Provider: g.Name(), Code: fmt.Sprintf("%d", resp.StatusCode), Message: string(body)}
	}

	var outer []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&outer); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(outer) == 0 {
		return "", &Error{Provider: g.Name(), Message: "empty response"}
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("failed to decode segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err == nil {
			sb.WriteString(part)
		}
	}

	if sb.Len() == 0 {
		return "", &Error{Provider: g.Name(), Message: "no translation in response"}
	}
	return sb.String(), nil
}
