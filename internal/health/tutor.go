// Package health answers health-information queries from a static bilingual
// knowledge base, with an optional Gemini-backed fallback for questions the
// knowledge base does not cover.
package health

import (
	"context"
	"fmt"
	"log"
	"strings"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// Answer sources, reported so the caller can tell curated content from
// generated content.
const (
	SourceKnowledgeBase = "knowledge_base"
	SourceAI            = "ai"
	SourceFallback      = "fallback"
)

// Answer is the tutor's response to a health query.
type Answer struct {
	Response string            `json:"response"`
	Source   string            `json:"source"`
	Language language.Language `json:"language"`
}

// Tutor serves health queries. A nil Tutor is usable and answers from the
// knowledge base alone.
type Tutor struct {
	llm *geminiClient // nil when no API key is configured
}

// New creates a Tutor. When geminiKey is empty the tutor runs on the
// knowledge base alone.
func New(ctx context.Context, geminiKey, geminiModel string) *Tutor {
	t := &Tutor{}
	if geminiKey == "" {
		log.Printf("health: no Gemini API key, using knowledge base only")
		return t
	}

	llm, err := newGeminiClient(ctx, geminiKey, geminiModel)
	if err != nil {
		log.Printf("health: failed to initialize Gemini client: %v", err)
		return t
	}
	t.llm = llm
	return t
}

// IsHealthQuery reports whether text looks like a health-related question in
// either language.
func (t *Tutor) IsHealthQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range healthKeywordsEN {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, kw := range healthKeywordsMR {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Process answers a health query in the requested language: knowledge base
// first, then the Gemini model when configured, then static guidance. It
// always produces an answer. A nil receiver is valid and answers from the
// knowledge base alone.
func (t *Tutor) Process(ctx context.Context, query string, lang language.Language) Answer {
	if lang != language.Marathi {
		lang = language.English
	}

	if info, ok := lookupCondition(query, lang); ok {
		return Answer{
			Response: formatConditionInfo(info, lang),
			Source:   SourceKnowledgeBase,
			Language: lang,
		}
	}

	if t != nil && t.llm != nil {
		response, err := t.llm.healthAnswer(ctx, query, lang)
		if err == nil {
			return Answer{Response: response, Source: SourceAI, Language: lang}
		}
		log.Printf("health: AI response failed: %v", err)
	}

	return Answer{
		Response: fallbackResponse(lang),
		Source:   SourceFallback,
		Language: lang,
	}
}

// lookupCondition finds a knowledge base entry whose keywords appear in the
// query.
func lookupCondition(query string, lang language.Language) (ConditionInfo, bool) {
	lower := strings.ToLower(query)
	for condition, keywords := range conditionKeywords[lang] {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				info, ok := knowledgeBase[lang][condition]
				return info, ok
			}
		}
	}
	return ConditionInfo{}, false
}

// formatConditionInfo renders a knowledge base entry as a readable response.
func formatConditionInfo(info ConditionInfo, lang language.Language) string {
	if lang == language.Marathi {
		return strings.TrimSpace(fmt.Sprintf(`**आरोग्य माहिती**

**लक्षणे:** %s

**सामान्य कारणे:** %s

**घरगुती उपाय:** %s

**औषधे:** %s

**महत्त्वाचे:** %s

**टीप:** ही माहिती केवळ शैक्षणिक उद्देशांसाठी आहे. वैद्यकीय सल्ल्यासाठी नेहमी पात्र आरोग्य व्यावसायिकाचा सल्ला घ्या.`,
			info.Symptoms, info.Causes, info.HomeRemedies, info.Medicines, info.Warning))
	}

	return strings.TrimSpace(fmt.Sprintf(`**Health Information**

**Symptoms:** %s

**Common Causes:** %s

**Home Remedies:** %s

**Medicines:** %s

**Important:** %s

**Note:** This information is for educational purposes only. Always consult a qualified healthcare professional for medical advice.`,
		info.Symptoms, info.Causes, info.HomeRemedies, info.Medicines, info.Warning))
}

// fallbackResponse is returned when neither the knowledge base nor the model
// can answer.
func fallbackResponse(lang language.Language) string {
	if lang == language.Marathi {
		return `मी मूलभूत आरोग्य माहिती देऊ शकतो. कृपया तुमची लक्षणे किंवा आरोग्य समस्या वर्णन करा आणि मी मदत करण्याचा प्रयत्न करेन:
- सामान्य कारणे
- घरगुती उपाय
- डॉक्टरांना केव्हा भेटावे
- मूलभूत प्रतिबंधात्मक उपाय

टीप: अचूक निदान आणि उपचारांसाठी, कृपया पात्र डॉक्टरांचा सल्ला घ्या.`
	}

	return `I can provide basic health information. Please describe your symptoms or health concern, and I'll try to help with:
- Common causes
- Home remedies
- When to see a doctor
- Basic prevention tips

Note: For accurate diagnosis and treatment, please consult a qualified doctor.`
}
