package ai

import (
	"context"
)

// TextGenerator defines the contract for free-form generation.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TextGenerator interface {
	// Generate produces a text completion for the prompt under the given
	// system instruction. A single synchronous call, no retries.
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// ScheduleGenerator produces raw JSON constrained to the trip-schedule shape.
// Callers own parsing and validation; the returned string is not guaranteed
// to conform even when the provider was asked for a schema-bound response.
type ScheduleGenerator interface {
	GenerateScheduleJSON(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// Embedder maps text to a vector for similarity search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
