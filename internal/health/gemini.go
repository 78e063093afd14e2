package health

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"codeberg.org/snonux/shabdsetu/internal/language"
)

const defaultGeminiModel = "gemini-2.0-flash"

// geminiClient answers health queries the knowledge base cannot, using a
// Gemini model.
type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(ctx context.Context, apiKey, model string) (*geminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiClient{client: client, model: model}, nil
}

// healthAnswer asks the model for a plain-language health explanation in the
// requested language.
func (g *geminiClient) healthAnswer(ctx context.Context, query string, lang language.Language) (string, error) {
	prompt := tutorPrompt(lang) + "\n\n" + query

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			// Low temperature keeps answers factual.
			Temperature: genai.Ptr[float32](0.3),
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return out, nil
}

// tutorPrompt frames the model as a health literacy tutor for low-literate
// users, in the answer language.
func tutorPrompt(lang language.Language) string {
	if lang == language.Marathi {
		return `तुम्ही कमी साक्षर लोकसंख्येसाठी आरोग्य साक्षरता शिक्षक आहात.
सोप्या, समजण्यायोग्य मराठीमध्ये आरोग्य माहिती द्या.

कृपया प्रदान करा:
1. सोप्या शब्दांत संक्षिप्त स्पष्टीकरण
2. सामान्य लक्षणे (लागू असल्यास)
3. साधे घरगुती उपाय
4. डॉक्टरांना केव्हा भेटावे
5. मूलभूत प्रतिबंधात्मक उपाय

तुमचा प्रतिसाद सोपा ठेवा, वैद्यकीय शब्दजाल टाळा आणि लहान वाक्ये वापरा.
गंभीर परिस्थितीसाठी डॉक्टरांचा सल्ला घेण्याची आठवण करून द्या.`
	}

	return `You are a health literacy tutor for low-literate populations.
Provide simple, clear health information in easy-to-understand English.

Please provide:
1. Brief explanation in simple words
2. Common symptoms (if applicable)
3. Simple home remedies
4. When to see a doctor
5. Basic prevention tips

Keep your response simple, avoid medical jargon, and use short sentences.
Always remind users to consult a doctor for serious conditions.`
}
