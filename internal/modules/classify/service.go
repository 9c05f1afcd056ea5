// README: Binary intent classifiers over the text generator, with safe defaults.
package classify

import (
	"context"
	"log"
	"strings"

	"aura/internal/ai"
)

// Service answers the two single-shot classifications the router needs.
// Classification is a containment test, not an exact match: generated output
// is not guaranteed to be a bare token, so any response containing the
// positive label maps to it and everything else maps to the safe default.
// This is also the only place capability errors are swallowed; a
// misclassification degrades gracefully where a crash would not.
type Service struct {
	gen   ai.TextGenerator
	cache *Cache
}

// NewService creates a classifier. cache may be nil.
func NewService(gen ai.TextGenerator, cache *Cache) *Service {
	return &Service{gen: gen, cache: cache}
}

// QueryType classifies a query as trip-planner or default.
func (s *Service) QueryType(ctx context.Context, query string) QueryType {
	label := s.classify(ctx, "type", query, queryTypePrompt, string(QueryTypeTripPlanner), string(QueryTypeDefault))
	return QueryType(label)
}

// Action classifies a default query as store or retrieve.
func (s *Service) Action(ctx context.Context, query string) Action {
	label := s.classify(ctx, "action", query, actionPrompt, string(ActionStore), string(ActionRetrieve))
	return Action(label)
}

func (s *Service) classify(ctx context.Context, kind, query, system, positive, fallback string) string {
	if label, ok := s.cache.get(ctx, kind, query); ok {
		return label
	}

	out, err := s.gen.Generate(ctx, "Query: "+query, system)
	if err != nil {
		log.Printf("classify: %s classification error, using %q: %v", kind, fallback, err)
		return fallback
	}

	label := fallback
	if strings.Contains(strings.ToLower(strings.TrimSpace(out)), positive) {
		label = positive
	}
	s.cache.set(ctx, kind, query, label)
	return label
}
