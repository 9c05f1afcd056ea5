// README: Semantic store backed by PostgreSQL; cosine ranking over stored embeddings.
package knowledge

import (
	"context"
	"math"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Match is one retrieval hit with its relevance score in [0, 1].
type Match struct {
	Content string
	Score   float64
}

// EntryStore is the persistence contract the workflow handler depends on.
type EntryStore interface {
	Insert(ctx context.Context, content string, embedding []float32) error
	Search(ctx context.Context, embedding []float32, minScore float64, maxResults int) ([]Match, error)
}

// Store persists knowledge entries in PostgreSQL. Embeddings are stored as
// float4 arrays and similarity is computed in Go; at knowledge-base scale a
// full scan per query is cheap and avoids a vector-index extension.
type Store struct {
	db        *pgxpool.Pool
	namespace string
}

// NewStore returns a Store scoped to one knowledge-base namespace.
func NewStore(db *pgxpool.Pool, namespace string) *Store {
	return &Store{db: db, namespace: namespace}
}

// EnsureSchema creates the backing table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS knowledge_entries (
			id BIGSERIAL PRIMARY KEY,
			namespace TEXT NOT NULL,
			content TEXT NOT NULL,
			embedding REAL[] NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS knowledge_entries_namespace_idx
		ON knowledge_entries (namespace)
	`)
	return err
}

// Insert stores content verbatim with its embedding. Duplicate content is
// deliberately not detected; repeated identical stores produce repeated rows.
func (s *Store) Insert(ctx context.Context, content string, embedding []float32) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO knowledge_entries (namespace, content, embedding)
		VALUES ($1, $2, $3)
	`, s.namespace, content, embedding)
	return err
}

// Search returns up to maxResults entries whose cosine similarity to the
// query embedding is at least minScore, best first.
func (s *Store) Search(ctx context.Context, embedding []float32, minScore float64, maxResults int) ([]Match, error) {
	rows, err := s.db.Query(ctx, `
		SELECT content, embedding FROM knowledge_entries WHERE namespace = $1
	`, s.namespace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var content string
		var stored []float32
		if err := rows.Scan(&content, &stored); err != nil {
			return nil, err
		}
		score := cosineSimilarity(embedding, stored)
		if score >= minScore {
			matches = append(matches, Match{Content: content, Score: score})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches, nil
}

// cosineSimilarity returns the cosine of the angle between a and b,
// or 0 when either vector is zero or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
