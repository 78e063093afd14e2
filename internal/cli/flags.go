package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	ListenAddr     string
	DictionaryFile string
	HistoryFile    string
	NoHistory      bool

	// One-shot translation flags
	SourceLanguage string
	TargetLanguage string

	// Provider flags
	ProviderBudget time.Duration
	OpenAIModel    string
	GeminiModel    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		ListenAddr:     ":8003",
		SourceLanguage: "auto",
		TargetLanguage: "auto",
		ProviderBudget: 20 * time.Second,
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
	}
}
