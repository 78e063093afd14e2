package health

import (
	"context"
	"strings"
	"testing"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

func newTestTutor() *Tutor {
	// No API key: knowledge base and static fallback only.
	return New(context.Background(), "", "")
}

func TestIsHealthQuery(t *testing.T) {
	tutor := newTestTutor()

	tests := []struct {
		input    string
		expected bool
	}{
		{"I have a fever since yesterday", true},
		{"what medicine for headache", true},
		{"मला ताप आला आहे", true},
		{"डोकेदुखी साठी औषध", true},
		{"hello how are you", false},
		{"translate this sentence please", false},
	}

	for _, tt := range tests {
		if got := tutor.IsHealthQuery(tt.input); got != tt.expected {
			t.Errorf("IsHealthQuery(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestProcessKnowledgeBaseHit(t *testing.T) {
	tutor := newTestTutor()

	answer := tutor.Process(context.Background(), "I have a fever", language.English)
	if answer.Source != SourceKnowledgeBase {
		t.Errorf("Expected source %q, got %q", SourceKnowledgeBase, answer.Source)
	}
	if !strings.Contains(answer.Response, "Paracetamol") {
		t.Errorf("Expected fever information, got %q", answer.Response)
	}
	if answer.Language != language.English {
		t.Errorf("Expected language en, got %q", answer.Language)
	}
}

func TestProcessKnowledgeBaseHitMarathi(t *testing.T) {
	tutor := newTestTutor()

	answer := tutor.Process(context.Background(), "मला ताप आला आहे", language.Marathi)
	if answer.Source != SourceKnowledgeBase {
		t.Errorf("Expected source %q, got %q", SourceKnowledgeBase, answer.Source)
	}
	if !strings.Contains(answer.Response, "आरोग्य माहिती") {
		t.Errorf("Expected Marathi health information, got %q", answer.Response)
	}
}

func TestProcessFallbackWithoutLLM(t *testing.T) {
	tutor := newTestTutor()

	// Health-adjacent but not in the knowledge base, and no LLM configured.
	answer := tutor.Process(context.Background(), "what is a rare tropical illness", language.English)
	if answer.Source != SourceFallback {
		t.Errorf("Expected source %q, got %q", SourceFallback, answer.Source)
	}
	if !strings.Contains(answer.Response, "consult a qualified doctor") {
		t.Errorf("Expected fallback guidance, got %q", answer.Response)
	}
}

func TestNilTutorStillAnswers(t *testing.T) {
	var tutor *Tutor

	if !tutor.IsHealthQuery("I have a fever") {
		t.Error("Expected nil tutor to still detect health queries")
	}

	answer := tutor.Process(context.Background(), "I have a fever", language.English)
	if answer.Source != SourceKnowledgeBase {
		t.Errorf("Expected source %q, got %q", SourceKnowledgeBase, answer.Source)
	}

	answer = tutor.Process(context.Background(), "what is a rare tropical illness", language.English)
	if answer.Source != SourceFallback {
		t.Errorf("Expected source %q, got %q", SourceFallback, answer.Source)
	}
}

func TestProcessCoercesUnknownLanguage(t *testing.T) {
	tutor := newTestTutor()

	answer := tutor.Process(context.Background(), "fever", language.Auto)
	if answer.Language != language.English {
		t.Errorf("Expected coercion to English, got %q", answer.Language)
	}
}
