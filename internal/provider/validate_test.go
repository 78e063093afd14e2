package provider

import (
	"testing"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

func TestAcceptMarathiTarget(t *testing.T) {
	tests := []struct {
		result   string
		expected bool
	}{
		{"नमस्कार", true},
		{"hello there", false}, // no Devanagari at all
		{"", false},
		{"mixed नमस्कार result", true},
	}

	for _, tt := range tests {
		if got := Accept(tt.result, "hello", language.Marathi); got != tt.expected {
			t.Errorf("Accept(%q, mr) = %v, expected %v", tt.result, got, tt.expected)
		}
	}
}

func TestAcceptEnglishTarget(t *testing.T) {
	tests := []struct {
		result   string
		expected bool
	}{
		{"hello", true},
		{"नमस्कार नमस्कार नमस्कार", false}, // wrong script
		{"hello (नमस्कार)", false},          // more than a third non-ASCII
		{"", false},
	}

	for _, tt := range tests {
		if got := Accept(tt.result, "नमस्कार", language.English); got != tt.expected {
			t.Errorf("Accept(%q, en) = %v, expected %v", tt.result, got, tt.expected)
		}
	}
}

func TestAcceptRejectsEcho(t *testing.T) {
	if Accept("hello", "hello", language.English) {
		t.Error("Expected echo of the input to be rejected")
	}
	if Accept("Hello ", " hello", language.English) {
		t.Error("Expected case/space-insensitive echo to be rejected")
	}
}
