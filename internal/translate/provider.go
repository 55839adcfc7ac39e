package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"what2cook/internal/domain"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Provider translates a batch of texts into the target language. The
// returned slice must match the input in length and order.
type Provider interface {
	Translate(ctx context.Context, texts []string, target domain.Language) ([]string, error)
}

// OpenAIProvider calls the OpenAI chat-completions API with a
// localization prompt and a JSON-object response format.
type OpenAIProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewOpenAIProvider creates a provider. An empty apiKey is allowed at
// construction; calls will fail with a configuration error, which the
// caller degrades gracefully.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func targetName(lang domain.Language) string {
	switch lang {
	case domain.LangNL:
		return "Dutch (nl-NL)"
	case domain.LangKO:
		return "Korean (ko-KR)"
	}
	return "English (en-US)"
}

type chatRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat json.RawMessage `json:"response_format"`
	Messages       []chatMessage   `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate sends one batch to the provider and validates the response
// shape. Any deviation (bad status, malformed JSON, length mismatch) is
// an error; retrying is the caller's decision and nobody retries here.
func (p *OpenAIProvider) Translate(ctx context.Context, texts []string, target domain.Language) ([]string, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	system := "You are a professional localization translator for a cooking & grocery-deals app in the Netherlands. " +
		fmt.Sprintf("Translate user-facing recipe text into %s. ", targetName(target)) +
		`Do NOT translate store names (e.g., "Albert Heijn", "Jumbo") or brand/platform names (e.g., "Amazon", "bol.com"). ` +
		"If a string contains product names in Dutch, keep them as-is. " +
		"Keep numbers, emoji, punctuation, and parentheses structure. " +
		"Prefer natural wording; do not do word-by-word translation. " +
		`Return JSON only: {"translations":[...]} with the same length as input.`

	user, err := json.Marshal(map[string]any{"targetLang": target, "texts": texts})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request payload: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model:          p.model,
		Temperature:    0.2,
		ResponseFormat: json.RawMessage(`{"type":"json_object"}`),
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: string(user)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translate request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("translate failed: %d %s", res.StatusCode, string(snippet))
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("response has no choices")
	}

	var payload struct {
		Translations []string `json:"translations"`
	}
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("invalid translation response shape: %w", err)
	}
	if len(payload.Translations) != len(texts) {
		return nil, fmt.Errorf("invalid translation response shape: got %d translations for %d texts",
			len(payload.Translations), len(texts))
	}

	return payload.Translations, nil
}
