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
	libreAPIURL = "https://libretranslate.de/translate"

	// LibreTranslate instances are community-hosted and noticeably slower
	// than the commercial endpoints.
	libreTimeout = 10 * time.Second
)

// LibreTranslate queries a LibreTranslate instance.
type LibreTranslate struct {
	endpoint   string
	httpClient *http.Client
}

// libreResponse represents the API response structure.
type libreResponse struct {
	TranslatedText string `json:"translatedText"`
}

// NewLibreTranslate creates a LibreTranslate provider.
func NewLibreTranslate() *LibreTranslate {
	return &LibreTranslate{
		endpoint: libreAPIURL,
		httpClient: &http.Client{
			Timeout: libreTimeout,
		},
	}
}

// Name returns the provider name.
func (l *LibreTranslate) Name() string {
	return "libretranslate"
}

// Translate requests a translation via form POST.
func (l *LibreTranslate) Translate(ctx context.Context, text string, src, tgt language.Language) (string, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("source", string(src))
	form.Set("target", string(tgt))
	form.Set("format", "text")

	req, err := http.NewRequestWithContext(ctx, "POST", l.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

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

	var libResp libreResponse
	if err := json.NewDecoder(resp.Body).Decode(&libResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	out := strings.TrimSpace(libResp.TranslatedText)
	if out == "" {
		return "", &Error{Provider: l.Name(), Message: "no translation in response"}
	}
	return out, nil
}
