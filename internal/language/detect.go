// Package language provides script-based detection of English and Marathi
// text. Detection is a pure function so that it can gate the rest of the
// translation pipeline without any network access.
package language

import (
	"strings"
	"unicode"
)

// Language is a two-letter language tag.
type Language string

const (
	English Language = "en"
	Marathi Language = "mr"

	// Auto asks the service to detect the language itself.
	Auto Language = "auto"
)

// devanagariRange covers the Devanagari Unicode block (U+0900–U+097F) used
// to write Marathi natively.
var devanagariRange = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0900, Hi: 0x097F, Stride: 1}},
}

// romanClueWords are common Marathi words spelled phonetically in Latin
// letters (greetings, pronouns, question words). They signal romanized
// Marathi input.
var romanClueWords = map[string]struct{}{
	"namaskar": {}, "dhanyawad": {}, "dhanyabad": {}, "kasa": {}, "kase": {},
	"kuthe": {}, "kiti": {}, "pani": {}, "anna": {}, "madad": {},
	"hoye": {}, "nahi": {}, "aaj": {}, "udya": {}, "kal": {},
	"sakal": {}, "sandhya": {}, "ratri": {}, "jevan": {}, "kaam": {},
	"mitra": {}, "maaf": {}, "krupa": {}, "tumhi": {}, "majhe": {}, "maza": {},
}

// ContainsDevanagari reports whether any rune of text falls in the
// Devanagari block.
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if unicode.In(r, devanagariRange) {
			return true
		}
	}
	return false
}

// Detect classifies text as English or Marathi.
//
// Devanagari presence wins immediately regardless of how much of the text
// uses it. Otherwise the text is tokenized on non-letter boundaries and
// counted against the romanized-Marathi clue set: at least one word in
// three (minimum one) must match for the text to count as Marathi. Empty
// input detects as English.
func Detect(text string) Language {
	if ContainsDevanagari(text) {
		return Marathi
	}

	words := latinWords(text)
	if len(words) == 0 {
		return English
	}

	matches := 0
	for _, w := range words {
		if _, ok := romanClueWords[w]; ok {
			matches++
		}
	}

	threshold := len(words) / 3
	if threshold < 1 {
		threshold = 1
	}
	if matches >= threshold {
		return Marathi
	}
	return English
}

// Coerce maps a caller-provided language name to a tag. Anything starting
// with "en" is English, everything else is Marathi; this is a strictly
// two-language system.
func Coerce(name string) Language {
	if strings.HasPrefix(strings.ToLower(name), "en") {
		return English
	}
	return Marathi
}

// Complement returns the other language of the pair.
func Complement(lang Language) Language {
	if lang == English {
		return Marathi
	}
	return English
}

// latinWords extracts lowercased runs of ASCII letters from text.
func latinWords(text string) []string {
	var words []string
	var current strings.Builder
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}
