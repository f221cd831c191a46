package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIGenerator struct {
	policy     *callPolicy
	model      string
	baseURL    string
	httpClient *http.Client
}

func newOpenAI(cfg Config, log Logger) *openAIGenerator {
	return &openAIGenerator{
		policy: &callPolicy{
			provider:   ProviderOpenAI,
			keys:       newKeyRing(cfg.APIKeys),
			timeout:    cfg.Timeout,
			maxRetries: cfg.MaxRetries,
			logger:     log,
		},
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

func (g *openAIGenerator) Provider() string {
	return ProviderOpenAI
}

// Generate sends the prompt as a user message. The schema travels in the
// system message since chat completions take it as plain instructions here.
func (g *openAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	return g.policy.do(ctx, func(ctx context.Context, key string) (string, error) {
		opts := []option.RequestOption{
			option.WithAPIKey(key),
			// Retries are owned by callPolicy.
			option.WithMaxRetries(0),
		}
		if g.baseURL != "" {
			opts = append(opts, option.WithBaseURL(g.baseURL))
		}
		if g.httpClient != nil {
			opts = append(opts, option.WithHTTPClient(g.httpClient))
		}
		client := openai.NewClient(opts...)

		messages := []openai.ChatCompletionMessageParamUnion{}
		if req.Schema != nil {
			messages = append(messages, openai.SystemMessage(schemaInstruction(req.Schema)))
		}
		messages = append(messages, openai.UserMessage(req.Prompt))

		resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(g.model),
			Messages: messages,
		})
		if err != nil {
			return "", fmt.Errorf("openai API error: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
	})
}

func schemaInstruction(s *Schema) string {
	return "Reply with a single JSON object that matches this JSON schema. Output JSON only, no other text:\n" + s.JSON()
}
