package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

func TestGoogleTranslateParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("client"); got != "gtx" {
			t.Errorf("Expected client=gtx, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "good morning" {
			t.Errorf("Expected q=good morning, got %q", got)
		}
		w.Write([]byte(`[[["सुप्र","good m",null,null,10],["भात","orning",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	g := &Google{endpoint: srv.URL, httpClient: srv.Client()}
	out, err := g.Translate(context.Background(), "good morning", language.English, language.Marathi)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "सुप्रभात" {
		t.Errorf("Expected सुप्रभात, got %q", out)
	}
}

func TestGoogleTranslateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := &Google{endpoint: srv.URL, httpClient: srv.Client()}
	if _, err := g.Translate(context.Background(), "hello", language.English, language.Marathi); err == nil {
		t.Error("Expected error for non-200 response")
	}
}

func TestGoogleTranslateRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := &Google{endpoint: srv.URL, httpClient: srv.Client()}
	_, err := g.Translate(context.Background(), "hello", language.English, language.Marathi)
	if _, ok := err.(*RateLimitError); !ok {
		t.Errorf("Expected RateLimitError, got %v", err)
	}
}

func TestMyMemoryTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("langpair"); got != "en|mr" {
			t.Errorf("Expected langpair en|mr, got %q", got)
		}
		w.Write([]byte(`{"responseData":{"translatedText":"धन्यवाद"},"responseStatus":200}`))
	}))
	defer srv.Close()

	m := &MyMemory{endpoint: srv.URL, httpClient: srv.Client()}
	out, err := m.Translate(context.Background(), "thank you", language.English, language.Marathi)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "धन्यवाद" {
		t.Errorf("Expected धन्यवाद, got %q", out)
	}
}

func TestMyMemoryEmptyTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":""}}`))
	}))
	defer srv.Close()

	m := &MyMemory{endpoint: srv.URL, httpClient: srv.Client()}
	if _, err := m.Translate(context.Background(), "hello", language.English, language.Marathi); err == nil {
		t.Error("Expected error for empty translation")
	}
}

func TestLibreTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("source"); got != "mr" {
			t.Errorf("Expected source mr, got %q", got)
		}
		w.Write([]byte(`{"translatedText":"water"}`))
	}))
	defer srv.Close()

	l := &LibreTranslate{endpoint: srv.URL, httpClient: srv.Client()}
	out, err := l.Translate(context.Background(), "पाणी", language.Marathi, language.English)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "water" {
		t.Errorf("Expected water, got %q", out)
	}
}

func TestLingvaTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translation":"नमस्कार"}`))
	}))
	defer srv.Close()

	l := &Lingva{endpoint: srv.URL, httpClient: srv.Client()}
	out, err := l.Translate(context.Background(), "hello", language.English, language.Marathi)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "नमस्कार" {
		t.Errorf("Expected नमस्कार, got %q", out)
	}
}

func TestLingvaMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	l := &Lingva{endpoint: srv.URL, httpClient: srv.Client()}
	if _, err := l.Translate(context.Background(), "hello", language.English, language.Marathi); err == nil {
		t.Error("Expected error for malformed response")
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI("", ""); err == nil {
		t.Error("Expected error when API key is missing")
	}
	if _, err := NewOpenAI("sk-test", ""); err != nil {
		t.Errorf("Expected no error with a key, got %v", err)
	}
}
