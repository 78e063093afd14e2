// Package romanize converts romanized Marathi (Marathi spelled with Latin
// letters) into Devanagari on a best-effort basis. The result is only used
// as an alternate lookup key for the dictionary and provider tiers; the
// original input is never replaced by it.
package romanize

import (
	"regexp"
	"sort"
)

// phraseTable maps romanized Marathi phrases to their Devanagari spelling.
// Multi-word phrases must be substituted before their constituent words,
// so lookups always go through the length-sorted rule list below.
var phraseTable = map[string]string{
	"namaskar":  "नमस्कार",
	"dhanyawad": "धन्यवाद",
	"dhanyabad": "धन्यवाद",
	"kasa ahat": "कसे आहात",
	"kase ahat": "कसे आहात",
	"pani":      "पाणी",
	"anna":      "अन्न",
	"madad":     "मदत",
	"kaam":      "काम",
	"tumhi":     "तुम्ही",
	"majhe":     "माझे",
	"maza":      "माझे",
	"aaj":       "आज",
	"udya":      "उद्या",
	"kal":       "काल",
	"jevan":     "जेवण",
	"mitra":     "मित्र",
	"sakal":     "सकाळ",
	"ratri":     "रात्र",
	"sandhya":   "संध्या",
}

// rule is a single compiled substitution.
type rule struct {
	pattern    *regexp.Regexp
	devanagari string
}

var rules = compileRules()

// compileRules builds the substitution rules sorted by descending phrase
// length so that multi-word idioms win over their constituent words.
// Substitution only fires on whole-word boundaries; unmapped substrings are
// left untouched.
func compileRules() []rule {
	phrases := make([]string, 0, len(phraseTable))
	for p := range phraseTable {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})

	compiled := make([]rule, 0, len(phrases))
	for _, p := range phrases {
		compiled = append(compiled, rule{
			pattern:    regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`),
			devanagari: phraseTable[p],
		})
	}
	return compiled
}

// ToDevanagari replaces known romanized Marathi words and phrases in text
// with their Devanagari equivalents. Input with no known words passes
// through unchanged (apart from lowercasing, which matches how the lookup
// tiers normalize their keys).
func ToDevanagari(text string) string {
	out := lower(text)
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.devanagari)
	}
	return out
}

// lower is an ASCII-only lowercase. Devanagari has no case, and the phrase
// table keys are plain ASCII.
func lower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
