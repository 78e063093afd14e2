// Package dictionary implements the highest-priority, zero-latency
// translation tier: exact and partial phrase lookup against static
// bidirectional tables. A miss here is not an error; the caller defers to
// the provider chain.
package dictionary

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// trailingPunctuation are the marks stripped before the second Marathi
// lookup attempt. The Devanagari danda (।) ends Marathi sentences.
const trailingPunctuation = "!?।,."

// pair is a phrase table entry kept in match order.
type pair struct {
	key   string
	value string
}

// Dictionary holds the static phrase tables plus any pairs loaded from an
// operator-provided file. It is built once at process start and never
// mutated afterwards.
type Dictionary struct {
	enToMr    map[string]string
	mrToEn    map[string]string
	romanToEn map[string]string

	// Multi-word keys sorted by descending length, so partial matching
	// always prefers the longest phrase.
	mrPhrases    []pair
	romanPhrases []pair

	// All romanized keys in the same order, for the word-by-word pass.
	romanKeys []pair
}

// New builds a Dictionary from the built-in phrase tables.
func New() *Dictionary {
	d := &Dictionary{
		enToMr:    make(map[string]string, len(englishToMarathi)),
		mrToEn:    make(map[string]string, len(marathiToEnglish)),
		romanToEn: make(map[string]string, len(romanizedToEnglish)),
	}
	for k, v := range englishToMarathi {
		d.enToMr[k] = v
	}
	for k, v := range marathiToEnglish {
		d.mrToEn[k] = v
	}
	for k, v := range romanizedToEnglish {
		d.romanToEn[k] = v
	}
	d.index()
	return d
}

// LoadFile merges extra phrase pairs into the dictionary before the service
// starts. Each line reads "english = marathi"; the Marathi side may be
// Devanagari or romanized. Blank lines and lines starting with '#' are
// ignored.
func (d *Dictionary) LoadFile(filename string) (int, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	added := 0
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		english := Normalize(parts[0])
		marathi := strings.TrimSpace(parts[1])
		if english == "" || marathi == "" {
			continue
		}
		d.add(english, marathi)
		added++
	}
	d.index()
	return added, nil
}

// add inserts one bidirectional pair.
func (d *Dictionary) add(english, marathi string) {
	d.enToMr[english] = marathi
	if language.ContainsDevanagari(marathi) {
		d.mrToEn[marathi] = english
	} else {
		d.romanToEn[strings.ToLower(marathi)] = english
	}
}

// index rebuilds the longest-first phrase lists.
func (d *Dictionary) index() {
	d.mrPhrases = sortedPairs(d.mrToEn, 2)
	d.romanPhrases = sortedPairs(d.romanToEn, 2)
	d.romanKeys = sortedPairs(d.romanToEn, 1)
}

// sortedPairs returns the entries of m whose keys have at least minWords
// words, sorted by descending key length (ties broken lexicographically so
// matching is deterministic).
func sortedPairs(m map[string]string, minWords int) []pair {
	var pairs []pair
	for k, v := range m {
		if len(strings.Fields(k)) >= minWords {
			pairs = append(pairs, pair{key: k, value: v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if len(pairs[i].key) != len(pairs[j].key) {
			return len(pairs[i].key) > len(pairs[j].key)
		}
		return pairs[i].key < pairs[j].key
	})
	return pairs
}

// Size returns the number of English-keyed entries.
func (d *Dictionary) Size() int {
	return len(d.enToMr)
}

// Normalize trims, lowercases and collapses internal whitespace. Lowercasing
// only affects the English side; Devanagari has no case.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Lookup resolves text from src to tgt using the phrase tables. The boolean
// reports whether any rule fired.
//
// English→Marathi accepts exact matches only: word-by-word fragments make
// for semantically poor translations, so anything else defers to the
// provider chain. Marathi→English additionally tries punctuation stripping,
// longest multi-word substring matching, and (for three words or more) a
// word-by-word pass that must resolve at least 70% of the words.
func (d *Dictionary) Lookup(text string, src, tgt language.Language) (string, bool) {
	normalized := Normalize(text)
	if normalized == "" {
		return "", false
	}

	if src == language.English && tgt == language.Marathi {
		out, ok := d.enToMr[normalized]
		return out, ok
	}
	if src == language.Marathi && tgt == language.English {
		return d.lookupMarathi(text, normalized)
	}
	return "", false
}

func (d *Dictionary) lookupMarathi(raw, normalized string) (string, bool) {
	trimmed := strings.TrimSpace(raw)

	// Exact Devanagari match on the raw trimmed text.
	if out, ok := d.mrToEn[trimmed]; ok {
		return out, true
	}

	// Exact match after stripping trailing punctuation.
	stripped := strings.TrimRight(trimmed, trailingPunctuation)
	stripped = strings.TrimSpace(stripped)
	if out, ok := d.mrToEn[stripped]; ok {
		return out, true
	}

	// Exact romanized match.
	if out, ok := d.romanToEn[normalized]; ok {
		return out, true
	}
	if out, ok := d.romanToEn[strings.TrimRight(normalized, trailingPunctuation)]; ok {
		return out, true
	}

	words := strings.Fields(normalized)

	// Longest multi-word substring, Devanagari first, then romanized.
	if len(words) >= 2 {
		for _, p := range d.mrPhrases {
			if strings.Contains(trimmed, p.key) {
				return p.value, true
			}
		}
		for _, p := range d.romanPhrases {
			if strings.Contains(normalized, p.key) {
				return p.value, true
			}
		}
	}

	// Word-by-word substitution for longer romanized input. Accept only
	// when at least 70% of the words resolved individually, otherwise the
	// output is mostly untranslated garbage.
	if len(words) >= 3 {
		if out, ok := d.wordByWord(words); ok {
			return out, true
		}
	}

	return "", false
}

func (d *Dictionary) wordByWord(words []string) (string, bool) {
	translated := make([]string, 0, len(words))
	found := 0

	for _, word := range words {
		if out, ok := d.romanToEn[word]; ok {
			translated = append(translated, out)
			found++
			continue
		}
		// Stricter partial matching for compound words.
		matched := false
		for _, p := range d.romanKeys {
			if len(p.key) >= 4 && (strings.Contains(p.key, word) || strings.Contains(word, p.key)) {
				translated = append(translated, p.value)
				found++
				matched = true
				break
			}
		}
		if !matched {
			translated = append(translated, word)
		}
	}

	if found > 0 && float64(found) >= float64(len(words))*0.7 {
		return strings.Join(translated, " "), true
	}
	return "", false
}
