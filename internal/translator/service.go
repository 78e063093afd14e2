// Package translator coordinates the translation tiers into a single
// resolution pipeline: detection, cache, dictionary, romanization variants,
// provider chain, fallback. Every request ends in a user-visible answer;
// the only error the pipeline can return is empty input at the boundary.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"codeberg.org/snonux/shabdsetu/internal/cache"
	"codeberg.org/snonux/shabdsetu/internal/dictionary"
	"codeberg.org/snonux/shabdsetu/internal/history"
	"codeberg.org/snonux/shabdsetu/internal/language"
	"codeberg.org/snonux/shabdsetu/internal/romanize"
)

// Resolution methods.
const (
	MethodDictionary = "dictionary"
	MethodCache      = "cache"
	MethodFallback   = "fallback"

	providerMethodPrefix = "provider:"
)

// ErrEmptyText rejects empty or whitespace-only input at the boundary. It is
// the only error Translate returns.
var ErrEmptyText = errors.New("text to translate cannot be empty")

// Result is a resolved translation.
type Result struct {
	TranslatedText string
	SourceLanguage language.Language
	TargetLanguage language.Language
	Method         string
}

// Resolver is the provider chain as the orchestrator sees it.
type Resolver interface {
	Resolve(ctx context.Context, text string, src, tgt language.Language) (string, string, bool)
	Names() []string
}

// Config holds orchestrator settings.
type Config struct {
	// Budget bounds one request's whole provider-chain traversal. The
	// per-provider timeouts keep individual calls short; this keeps the
	// sum predictable too.
	Budget time.Duration

	// History optionally records provider-resolved translations.
	History *history.Store
}

// DefaultConfig returns default orchestrator settings.
func DefaultConfig() *Config {
	return &Config{
		Budget: 20 * time.Second,
	}
}

// Service resolves translation requests. One instance is shared by all
// requests; the cache and the API call counter are its only mutable state.
type Service struct {
	dict     *dictionary.Dictionary
	chain    Resolver
	cache    *cache.Cache
	hist     *history.Store
	budget   time.Duration
	apiCalls atomic.Int64
}

// New creates a Service over the given dictionary and provider chain.
func New(dict *dictionary.Dictionary, chain Resolver, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	budget := config.Budget
	if budget <= 0 {
		budget = DefaultConfig().Budget
	}
	return &Service{
		dict:   dict,
		chain:  chain,
		cache:  cache.New(),
		hist:   config.History,
		budget: budget,
	}
}

// Translate resolves text from source to target. Either language may be
// "auto": the source is then detected from the text and the target fixed as
// the complement of the source. When both are explicit but equal, the target
// is coerced to the complement, keeping the source ≠ target invariant of
// this strictly bidirectional system.
func (s *Service) Translate(ctx context.Context, text, source, target string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyText
	}

	// DETECT
	var src language.Language
	if source == "" || source == string(language.Auto) {
		src = language.Detect(text)
	} else {
		src = language.Coerce(source)
	}
	var tgt language.Language
	if target == "" || target == string(language.Auto) {
		tgt = language.Complement(src)
	} else {
		tgt = language.Coerce(target)
	}
	if tgt == src {
		tgt = language.Complement(src)
	}

	// CACHE_CHECK
	key := cache.Key(strings.ToLower(text), src, tgt)
	if entry, ok := s.cache.Get(key); ok {
		return Result{
			TranslatedText: entry.Text,
			SourceLanguage: src,
			TargetLanguage: tgt,
			Method:         MethodCache,
		}, nil
	}

	// DICTIONARY
	if out, ok := s.dict.Lookup(text, src, tgt); ok {
		s.cache.Put(key, cache.Entry{Text: out, Method: MethodDictionary})
		return Result{
			TranslatedText: out,
			SourceLanguage: src,
			TargetLanguage: tgt,
			Method:         MethodDictionary,
		}, nil
	}

	// VARIANT_GENERATION + PROVIDER_CHAIN
	chainCtx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	for _, variant := range variants(text, src) {
		out, name, ok := s.chain.Resolve(chainCtx, variant, src, tgt)
		if !ok {
			continue
		}
		s.apiCalls.Add(1)
		method := providerMethodPrefix + name
		// Cache under the original request, not the variant.
		s.cache.Put(key, cache.Entry{Text: out, Method: method})
		s.record(text, out, src, tgt, method)
		return Result{
			TranslatedText: out,
			SourceLanguage: src,
			TargetLanguage: tgt,
			Method:         method,
		}, nil
	}

	// FALLBACK: still a success — the user must always get a response.
	return Result{
		TranslatedText: fmt.Sprintf("Translation unavailable for '%s'.", text),
		SourceLanguage: src,
		TargetLanguage: tgt,
		Method:         MethodFallback,
	}, nil
}

// variants builds the ordered, de-duplicated list of texts to try against
// the provider chain. Romanized Marathi input (no Devanagari) gets one extra
// variant with known words transliterated, which markedly improves provider
// hit rates.
func variants(text string, src language.Language) []string {
	out := []string{text}
	if src == language.Marathi && !language.ContainsDevanagari(text) {
		if replaced := romanize.ToDevanagari(text); !strings.EqualFold(replaced, text) {
			out = append(out, replaced)
		}
	}
	return out
}

// record appends to the history store when one is configured.
func (s *Service) record(text, translation string, src, tgt language.Language, method string) {
	if s.hist == nil {
		return
	}
	err := s.hist.Record(history.Entry{
		Text:        text,
		Translation: translation,
		Source:      string(src),
		Target:      string(tgt),
		Method:      method,
	})
	if err != nil {
		log.Printf("translator: failed to record history: %v", err)
	}
}

// APICallCount returns how many translations were resolved by external
// providers since process start.
func (s *Service) APICallCount() int64 {
	return s.apiCalls.Load()
}

// CacheSize returns the number of cached translations.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}

// CacheKeys returns up to n cache keys for the stats endpoint.
func (s *Service) CacheKeys(n int) []string {
	return s.cache.Keys(n)
}

// ClearCache empties the cache and returns the prior size.
func (s *Service) ClearCache() int {
	return s.cache.Clear()
}

// Dictionary exposes the dictionary for the health-check self-test.
func (s *Service) Dictionary() *dictionary.Dictionary {
	return s.dict
}

// ProviderNames returns the configured provider order.
func (s *Service) ProviderNames() []string {
	return s.chain.Names()
}

// History returns the history store, or nil when disabled.
func (s *Service) History() *history.Store {
	return s.hist
}
