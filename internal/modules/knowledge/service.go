// README: Knowledge workflow: store/retrieve against the semantic store plus answer synthesis.
package knowledge

import (
	"context"
	"fmt"
	"log"
	"strings"

	"aura/internal/ai"
	"aura/internal/modules/classify"
)

// Fixed retrieval parameters of the workflow.
const (
	minRelevanceScore = 0.4
	maxRetrieveHits   = 9
)

const storedMessage = "I've stored this information in the knowledge base."

const notFoundMessage = "I couldn't find any relevant information in the knowledge base for your question."

const answerPrompt = `You are a helpful assistant that answers questions based on information from a knowledge base.
Use the provided information to give accurate, helpful responses.
If the information is not sufficient, say so clearly.`

// Service orchestrates the store/retrieve workflow. Every failure is
// converted to a user-facing message; Handle never returns an error because
// the knowledge path's absorbing state is a formatted string.
type Service struct {
	gen        ai.TextGenerator
	embed      ai.Embedder
	store      EntryStore
	classifier *classify.Service
}

// NewService wires the knowledge workflow.
func NewService(gen ai.TextGenerator, embed ai.Embedder, store EntryStore, classifier *classify.Service) *Service {
	return &Service{gen: gen, embed: embed, store: store, classifier: classifier}
}

// Handle classifies the query as a store or retrieve action and runs it.
func (s *Service) Handle(ctx context.Context, query string) string {
	if s.classifier.Action(ctx, query) == classify.ActionStore {
		return s.handleStore(ctx, query)
	}
	return s.handleRetrieve(ctx, query)
}

// handleStore writes the query verbatim. There is no duplicate detection and
// no confirmation probe; repeated identical stores produce repeated entries.
func (s *Service) handleStore(ctx context.Context, query string) string {
	emb, err := s.embed.Embed(ctx, query)
	if err != nil {
		log.Printf("knowledge: embed for store failed: %v", err)
		return fmt.Sprintf("I encountered an issue storing information: %v", err)
	}
	if err := s.store.Insert(ctx, query, emb); err != nil {
		log.Printf("knowledge: insert failed: %v", err)
		return fmt.Sprintf("I encountered an issue storing information: %v", err)
	}
	return storedMessage
}

// handleRetrieve searches the store and synthesizes an answer over the hits.
func (s *Service) handleRetrieve(ctx context.Context, query string) string {
	emb, err := s.embed.Embed(ctx, query)
	if err != nil {
		log.Printf("knowledge: embed for retrieve failed: %v", err)
		return fmt.Sprintf("I encountered an issue retrieving information: %v", err)
	}

	matches, err := s.store.Search(ctx, emb, minRelevanceScore, maxRetrieveHits)
	if err != nil {
		log.Printf("knowledge: search failed: %v", err)
		return fmt.Sprintf("I encountered an issue retrieving information: %v", err)
	}
	if len(matches) == 0 {
		return notFoundMessage
	}

	answer, err := s.gen.Generate(ctx, buildAnswerQuery(query, matches), answerPrompt)
	if err != nil {
		log.Printf("knowledge: answer synthesis failed: %v", err)
		return fmt.Sprintf("I encountered an issue retrieving information: %v", err)
	}
	return answer
}

// buildAnswerQuery concatenates the retrieved snippets into the prompt.
func buildAnswerQuery(query string, matches []Match) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(query)
	b.WriteString("\n\nInformation from knowledge base:\n")
	for _, m := range matches {
		b.WriteString("- ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
