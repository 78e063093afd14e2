package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/shabdsetu/internal/dictionary"
	"codeberg.org/snonux/shabdsetu/internal/language"
)

// stubChain implements Resolver for testing
type stubChain struct {
	result       string
	providerName string
	fail         bool
	calls        []string
}

func (s *stubChain) Resolve(ctx context.Context, text string, src, tgt language.Language) (string, string, bool) {
	s.calls = append(s.calls, text)
	if s.fail {
		return "", "", false
	}
	return s.result, s.providerName, true
}

func (s *stubChain) Names() []string {
	return []string{s.providerName}
}

func newTestService(chain Resolver) *Service {
	return New(dictionary.New(), chain, nil)
}

func TestTranslateEmptyText(t *testing.T) {
	svc := newTestService(&stubChain{fail: true})

	if _, err := svc.Translate(context.Background(), "", "auto", "auto"); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText, got %v", err)
	}
	if _, err := svc.Translate(context.Background(), "   ", "auto", "auto"); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText for whitespace, got %v", err)
	}
}

func TestTranslateDictionaryHit(t *testing.T) {
	chain := &stubChain{fail: true}
	svc := newTestService(chain)

	result, err := svc.Translate(context.Background(), "hello", "en", "mr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Method != MethodDictionary {
		t.Errorf("Expected method dictionary, got %q", result.Method)
	}
	if result.TranslatedText != "नमस्कार" {
		t.Errorf("Expected नमस्कार, got %q", result.TranslatedText)
	}
	if len(chain.calls) != 0 {
		t.Errorf("Provider chain must not run on a dictionary hit, got %d calls", len(chain.calls))
	}
}

func TestTranslateIdempotentSecondCallFromCache(t *testing.T) {
	svc := newTestService(&stubChain{result: "काही मजकूर", providerName: "google"})

	first, err := svc.Translate(context.Background(), "some uncommon sentence", "en", "mr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if first.Method != "provider:google" {
		t.Errorf("Expected method provider:google, got %q", first.Method)
	}

	second, err := svc.Translate(context.Background(), "some uncommon sentence", "en", "mr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if second.Method != MethodCache {
		t.Errorf("Expected method cache on second call, got %q", second.Method)
	}
	if second.TranslatedText != first.TranslatedText {
		t.Errorf("Expected identical translation, got %q and %q",
			first.TranslatedText, second.TranslatedText)
	}
}

func TestTranslateAutoDetection(t *testing.T) {
	svc := newTestService(&stubChain{fail: true})

	result, err := svc.Translate(context.Background(), "नमस्कार", "auto", "auto")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.SourceLanguage != language.Marathi {
		t.Errorf("Expected detected source mr, got %q", result.SourceLanguage)
	}
	if result.TargetLanguage != language.English {
		t.Errorf("Expected target en, got %q", result.TargetLanguage)
	}
	if result.TranslatedText != "hello" {
		t.Errorf("Expected hello, got %q", result.TranslatedText)
	}
}

func TestTranslateEqualLanguagesCoerced(t *testing.T) {
	svc := newTestService(&stubChain{fail: true})

	result, err := svc.Translate(context.Background(), "hello", "en", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.TargetLanguage != language.Marathi {
		t.Errorf("Expected target coerced to mr, got %q", result.TargetLanguage)
	}
}

func TestTranslateFallback(t *testing.T) {
	svc := newTestService(&stubChain{fail: true})

	result, err := svc.Translate(context.Background(), "zzxx123", "en", "mr")
	if err != nil {
		t.Fatalf("Fallback must not be an error, got %v", err)
	}
	if result.Method != MethodFallback {
		t.Errorf("Expected method fallback, got %q", result.Method)
	}
	if !strings.Contains(result.TranslatedText, "zzxx123") {
		t.Errorf("Expected fallback message to name the input, got %q", result.TranslatedText)
	}
}

func TestTranslateRomanizedVariantGenerated(t *testing.T) {
	chain := &stubChain{fail: true}
	svc := newTestService(chain)

	// Not in any dictionary table, detected as Marathi, no Devanagari:
	// the chain should see the original plus a transliterated variant.
	_, err := svc.Translate(context.Background(), "namaskar punha bhetuya chaan", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(chain.calls) != 2 {
		t.Fatalf("Expected 2 chain calls (original + variant), got %d: %v", len(chain.calls), chain.calls)
	}
	if chain.calls[0] != "namaskar punha bhetuya chaan" {
		t.Errorf("Expected original text first, got %q", chain.calls[0])
	}
	if !language.ContainsDevanagari(chain.calls[1]) {
		t.Errorf("Expected transliterated variant, got %q", chain.calls[1])
	}
}

func TestTranslateNoVariantForDevanagari(t *testing.T) {
	chain := &stubChain{fail: true}
	svc := newTestService(chain)

	_, err := svc.Translate(context.Background(), "अपरिचित वाक्य येथे", "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(chain.calls) != 1 {
		t.Errorf("Expected 1 chain call for Devanagari input, got %d", len(chain.calls))
	}
}

func TestTranslateAPICallCount(t *testing.T) {
	svc := newTestService(&stubChain{result: "नमस्कार जग", providerName: "google"})

	if svc.APICallCount() != 0 {
		t.Errorf("Expected 0 API calls initially, got %d", svc.APICallCount())
	}

	if _, err := svc.Translate(context.Background(), "an unseen phrase", "en", "mr"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if svc.APICallCount() != 1 {
		t.Errorf("Expected 1 API call, got %d", svc.APICallCount())
	}

	// Cache hit must not bump the counter.
	if _, err := svc.Translate(context.Background(), "an unseen phrase", "en", "mr"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if svc.APICallCount() != 1 {
		t.Errorf("Expected counter unchanged after cache hit, got %d", svc.APICallCount())
	}
}

func TestClearCacheForcesRecomputation(t *testing.T) {
	svc := newTestService(&stubChain{result: "नमस्कार जग", providerName: "google"})

	if _, err := svc.Translate(context.Background(), "an unseen phrase", "en", "mr"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if svc.CacheSize() != 1 {
		t.Fatalf("Expected 1 cached entry, got %d", svc.CacheSize())
	}

	if removed := svc.ClearCache(); removed != 1 {
		t.Errorf("Expected 1 removed entry, got %d", removed)
	}
	if svc.CacheSize() != 0 {
		t.Errorf("Expected empty cache, got %d", svc.CacheSize())
	}

	result, err := svc.Translate(context.Background(), "an unseen phrase", "en", "mr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Method == MethodCache {
		t.Error("Expected recomputation after cache clear, got a cache hit")
	}
}

func TestTranslateRoundTripViaDictionary(t *testing.T) {
	svc := newTestService(&stubChain{fail: true})

	forward, err := svc.Translate(context.Background(), "hello", "en", "mr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if forward.Method != MethodDictionary {
		t.Fatalf("Expected dictionary hit, got %q", forward.Method)
	}

	back, err := svc.Translate(context.Background(), forward.TranslatedText, "mr", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if back.Method != MethodDictionary {
		t.Errorf("Expected dictionary hit on the way back, got %q", back.Method)
	}
	if back.TranslatedText != "hello" {
		t.Errorf("Expected round trip back to hello, got %q", back.TranslatedText)
	}
}
