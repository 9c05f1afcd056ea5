package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiModel    = "gemini-2.0-flash"
	embeddingModel = "text-embedding-004"
)

// GeminiProvider implements TextGenerator, ScheduleGenerator and Embedder
// using Google's Gemini models.
type GeminiProvider struct {
	client        *genai.Client
	textModel     *genai.GenerativeModel
	scheduleModel *genai.GenerativeModel
	embedModel    *genai.EmbeddingModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	textModel := client.GenerativeModel(geminiModel)
	textModel.SetTemperature(0.4)

	// Separate model handle for itinerary generation: JSON responses bound to
	// the trip-schedule shape. Schema conformance is still revalidated locally.
	scheduleModel := client.GenerativeModel(geminiModel)
	scheduleModel.ResponseMIMEType = "application/json"
	scheduleModel.ResponseSchema = tripScheduleSchema
	scheduleModel.SetTemperature(0.4)

	return &GeminiProvider{
		client:        client,
		textModel:     textModel,
		scheduleModel: scheduleModel,
		embedModel:    client.EmbeddingModel(embeddingModel),
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate runs a single text completion.
// Note: While Gemini supports SystemInstruction, the model handle is shared
// across requests, so the per-call instruction is prepended to the prompt
// instead of mutating shared model state.
func (p *GeminiProvider) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	return p.generate(ctx, p.textModel, prompt, systemInstruction)
}

// GenerateScheduleJSON runs a schedule-schema-bound completion and returns the
// raw JSON text.
func (p *GeminiProvider) GenerateScheduleJSON(ctx context.Context, prompt, systemInstruction string) (string, error) {
	out, err := p.generate(ctx, p.scheduleModel, prompt, systemInstruction)
	if err != nil {
		return "", err
	}
	// JSON mode should not emit markdown fences, but strip them if present.
	return cleanJSONString(out), nil
}

// Embed returns the embedding vector for the given text.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := p.embedModel.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini: embed content: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini: API returned empty embedding")
	}
	return res.Embedding.Values, nil
}

func (p *GeminiProvider) generate(ctx context.Context, model *genai.GenerativeModel, prompt, systemInstruction string) (string, error) {
	fullPrompt := prompt
	if systemInstruction != "" {
		fullPrompt = systemInstruction + "\n\n" + prompt
	}

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.Join(textParts, "\n"), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
