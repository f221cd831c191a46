package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 8192

type anthropicGenerator struct {
	policy     *callPolicy
	model      string
	baseURL    string
	httpClient *http.Client
}

func newAnthropic(cfg Config, log Logger) *anthropicGenerator {
	return &anthropicGenerator{
		policy: &callPolicy{
			provider:   ProviderAnthropic,
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

func (g *anthropicGenerator) Provider() string {
	return ProviderAnthropic
}

func (g *anthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	return g.policy.do(ctx, func(ctx context.Context, key string) (string, error) {
		opts := []option.RequestOption{
			option.WithAPIKey(key),
			option.WithMaxRetries(0),
		}
		if g.baseURL != "" {
			opts = append(opts, option.WithBaseURL(g.baseURL))
		}
		if g.httpClient != nil {
			opts = append(opts, option.WithHTTPClient(g.httpClient))
		}
		client := anthropic.NewClient(opts...)

		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(g.model),
			MaxTokens: anthropicMaxTokens,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
			},
		}
		if req.Schema != nil {
			params.System = []anthropic.TextBlockParam{
				{Text: schemaInstruction(req.Schema)},
			}
		}

		resp, err := client.Messages.New(ctx, params)
		if err != nil {
			return "", fmt.Errorf("anthropic API error: %w", err)
		}

		var sb strings.Builder
		for _, block := range resp.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		return sb.String(), nil
	})
}
