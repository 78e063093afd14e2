package provider

import (
	"strings"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// Accept decides whether a raw backend result is usable for the requested
// target language. Backends regularly echo the source text back or return
// it in the wrong script; those false positives are discarded so the chain
// can try the next backend.
func Accept(result, input string, tgt language.Language) bool {
	result = strings.TrimSpace(result)
	if result == "" {
		return false
	}

	// An echo of the input is not a translation.
	if strings.EqualFold(result, strings.TrimSpace(input)) {
		return false
	}

	if tgt == language.Marathi {
		return language.ContainsDevanagari(result)
	}
	return mostlyASCII(result)
}

// mostlyASCII reports whether no more than roughly a third of the runes are
// non-ASCII. English results above that ratio are almost always
// source-script text passed through unchanged.
func mostlyASCII(text string) bool {
	runes := []rune(text)
	nonASCII := 0
	for _, r := range runes {
		if r > 127 {
			nonASCII++
		}
	}
	limit := len(runes) / 3
	if limit < 2 {
		limit = 2
	}
	return nonASCII <= limit
}
