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
	myMemoryAPIURL  = "https://api.mymemory.translated.net/get"
	myMemoryTimeout = 8 * time.Second

	// MyMemory grants a larger anonymous quota when a contact address is
	// supplied.
	myMemoryContact = "demo@example.com"
)

// MyMemory queries the MyMemory translation memory API.
type MyMemory struct {
	endpoint   string
	httpClient *http.Client
}

// myMemoryResponse represents the API response structure.
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus int `json:"responseStatus"`
}

// NewMyMemory creates a MyMemory translation provider.
func NewMyMemory() *MyMemory {
	return &MyMemory{
		endpoint: myMemoryAPIURL,
		httpClient: &http.Client{
			Timeout: myMemoryTimeout,
		},
	}
}

// Name returns the provider name.
func (m *MyMemory) Name() string {
	return "mymemory"
}

// Translate requests a translation from MyMemory.
func (m *MyMemory) Translate(ctx context.Context, text string, src, tgt language.Language) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", fmt.Sprintf("%s|%s", src, tgt))
	params.Set("de", myMemoryContact)

	req, err := http.NewRequestWithContext(ctx, "GET", m.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &RateLimitError{Provider: m.Name(), RetryAfter: 60}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &Error{Provider: m.Name(), Code: fmt.Sprintf("%d", resp.StatusCode), Message: string(body)}
	}

	var mmResp myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&mmResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	out := strings.TrimSpace(mmResp.ResponseData.TranslatedText)
	if out == "" {
		return "", &Error{Provider: m.Name(), Message: "no translation in response"}
	}
	return out, nil
}
