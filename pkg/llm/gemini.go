package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type geminiGenerator struct {
	policy     *callPolicy
	model      string
	baseURL    string
	httpClient *http.Client
}

func newGemini(cfg Config, log Logger) *geminiGenerator {
	return &geminiGenerator{
		policy: &callPolicy{
			provider:   ProviderGemini,
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

func (g *geminiGenerator) Provider() string {
	return ProviderGemini
}

// Generate sends the prompt with a JSON response schema when req.Schema is set
func (g *geminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	return g.policy.do(ctx, func(ctx context.Context, key string) (string, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      key,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  g.httpClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
		if err != nil {
			return "", fmt.Errorf("create client: %w", err)
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), g.contentConfig(req))
		if err != nil {
			return "", fmt.Errorf("generate content: %w", err)
		}
		return responseText(result), nil
	})
}

func (g *geminiGenerator) contentConfig(req Request) *genai.GenerateContentConfig {
	if req.Schema == nil {
		return nil
	}
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(req.Schema),
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

var genaiTypes = map[Type]genai.Type{
	TypeObject:  genai.TypeObject,
	TypeArray:   genai.TypeArray,
	TypeString:  genai.TypeString,
	TypeNumber:  genai.TypeNumber,
	TypeInteger: genai.TypeInteger,
	TypeBoolean: genai.TypeBoolean,
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:             genaiTypes[s.Type],
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrder,
		Items:            toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = toGenaiSchema(p)
		}
	}
	return out
}
