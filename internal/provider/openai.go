package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

// OpenAI translates via a chat-completion model. It is only added to the
// chain when an API key is configured.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI translation provider.
func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Name returns the provider name.
func (p *OpenAI) Name() string {
	return "openai"
}

// Translate asks the model for a bare translation.
func (p *OpenAI) Translate(ctx context.Context, text string, src, tgt language.Language) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the following %s text to %s. Respond with only the translation, nothing else.\n\n%s",
					languageName(src), languageName(tgt), text),
			},
		},
		MaxTokens:   256,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Provider: p.Name(), Message: "no translation returned"}
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", &Error{Provider: p.Name(), Message: "empty translation returned"}
	}
	return out, nil
}

func languageName(lang language.Language) string {
	if lang == language.English {
		return "English"
	}
	return "Marathi"
}
