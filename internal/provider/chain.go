package provider

import (
	"context"
	"log"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// Chain queries translation backends in a fixed priority order and returns
// the first validated result. The order never changes at runtime, so
// resolution behavior is reproducible across runs. The chain exclusively
// owns its provider list.
type Chain struct {
	providers []Provider
	breakers  map[string]*gobreaker.CircuitBreaker
}

// NewChain creates a chain over the given providers, in order. Each provider
// gets its own circuit breaker so a backend that fails repeatedly is skipped
// without paying its timeout on every request.
func NewChain(providers ...Provider) *Chain {
	c := &Chain{
		providers: providers,
		breakers:  make(map[string]*gobreaker.CircuitBreaker, len(providers)),
	}
	for _, p := range providers {
		c.breakers[p.Name()] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        p.Name(),
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		})
	}
	return c
}

// DefaultChain builds the production provider order: the free Google
// endpoint first (fastest and most reliable), an OpenAI model second when a
// key is configured, then MyMemory, LibreTranslate and Lingva.
func DefaultChain(openAIKey, openAIModel string) *Chain {
	providers := []Provider{NewGoogle()}
	if openAIKey != "" {
		if p, err := NewOpenAI(openAIKey, openAIModel); err == nil {
			providers = append(providers, p)
		}
	}
	providers = append(providers, NewMyMemory(), NewLibreTranslate(), NewLingva())
	return NewChain(providers...)
}

// Names returns the provider names in chain order.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return names
}

// Resolve tries each provider in order and returns the first result that
// passes validation, together with the winning provider's name. A single
// provider failure never aborts the chain; exhaustion reports absence via
// ok=false, not an error.
func (c *Chain) Resolve(ctx context.Context, text string, src, tgt language.Language) (string, string, bool) {
	for _, p := range c.providers {
		if ctx.Err() != nil {
			log.Printf("provider chain: request budget exhausted before %s", p.Name())
			return "", "", false
		}

		result, err := c.breakers[p.Name()].Execute(func() (interface{}, error) {
			return p.Translate(ctx, text, src, tgt)
		})
		if err != nil {
			log.Printf("provider %s failed: %v", p.Name(), err)
			continue
		}

		out := result.(string)
		if !Accept(out, text, tgt) {
			log.Printf("provider %s: discarding invalid result for target %s: %q", p.Name(), tgt, out)
			continue
		}
		return out, p.Name(), true
	}
	return "", "", false
}
