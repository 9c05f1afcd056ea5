// README: Knowledge workflow tests (store/retrieve scenarios, error absorption).
package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aura/internal/modules/classify"
)

// scriptedGenerator answers classification prompts with a fixed action label
// and every other prompt with a fixed answer, mimicking the two generator
// roles the workflow exercises.
type scriptedGenerator struct {
	action     string
	answer     string
	answerErr  error
	lastPrompt string
}

func (s *scriptedGenerator) Generate(_ context.Context, prompt, system string) (string, error) {
	if strings.Contains(system, "determines user intent") {
		return s.action, nil
	}
	s.lastPrompt = prompt
	return s.answer, s.answerErr
}

// stubEmbedder is a test double for ai.Embedder.
type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vec, s.err
}

// memStore is an in-memory EntryStore.
type memStore struct {
	contents  []string
	matches   []Match
	insertErr error
	searchErr error
}

func (m *memStore) Insert(_ context.Context, content string, _ []float32) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.contents = append(m.contents, content)
	return nil
}

func (m *memStore) Search(_ context.Context, _ []float32, _ float64, _ int) ([]Match, error) {
	return m.matches, m.searchErr
}

func newTestService(gen *scriptedGenerator, store *memStore) *Service {
	classifier := classify.NewService(gen, nil)
	return NewService(gen, &stubEmbedder{vec: []float32{0.1, 0.2}}, store, classifier)
}

func TestHandle_StoreWritesVerbatim(t *testing.T) {
	gen := &scriptedGenerator{action: "store"}
	store := &memStore{}
	svc := newTestService(gen, store)

	query := "Remember that my birthday is July 25"
	got := svc.Handle(context.Background(), query)

	if got != storedMessage {
		t.Errorf("response = %q, want storage acknowledgement", got)
	}
	if len(store.contents) != 1 || store.contents[0] != query {
		t.Errorf("stored contents = %v, want exactly the query text", store.contents)
	}
}

func TestHandle_RepeatedStoresAccumulate(t *testing.T) {
	gen := &scriptedGenerator{action: "store"}
	store := &memStore{}
	svc := newTestService(gen, store)

	svc.Handle(context.Background(), "I like pizza")
	svc.Handle(context.Background(), "I like pizza")

	if len(store.contents) != 2 {
		t.Errorf("stored %d entries, want 2 (no dedup)", len(store.contents))
	}
}

func TestHandle_RetrieveNoMatches(t *testing.T) {
	gen := &scriptedGenerator{action: "retrieve", answer: "should not be used"}
	store := &memStore{}
	svc := newTestService(gen, store)

	got := svc.Handle(context.Background(), "What is my birthday?")
	if got != notFoundMessage {
		t.Errorf("response = %q, want not-found message", got)
	}
}

func TestHandle_RetrieveSynthesizesAnswer(t *testing.T) {
	gen := &scriptedGenerator{action: "retrieve", answer: "Your birthday is July 25."}
	store := &memStore{matches: []Match{
		{Content: "Remember that my birthday is July 25", Score: 0.9},
		{Content: "I like pizza", Score: 0.5},
	}}
	svc := newTestService(gen, store)

	got := svc.Handle(context.Background(), "What is my birthday?")
	if got != "Your birthday is July 25." {
		t.Errorf("response = %q, want synthesized answer", got)
	}
	// retrieved snippets are concatenated into the prompt
	if !strings.Contains(gen.lastPrompt, "my birthday is July 25") || !strings.Contains(gen.lastPrompt, "I like pizza") {
		t.Errorf("answer prompt missing snippets:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "What is my birthday?") {
		t.Errorf("answer prompt missing question:\n%s", gen.lastPrompt)
	}
}

func TestHandle_ErrorsBecomeUserFacingStrings(t *testing.T) {
	cases := []struct {
		name string
		gen  *scriptedGenerator
		mod  func(*Service, *memStore)
		want string
	}{
		{
			name: "search failure",
			gen:  &scriptedGenerator{action: "retrieve"},
			mod:  func(_ *Service, m *memStore) { m.searchErr = errors.New("pg down") },
			want: "issue retrieving",
		},
		{
			name: "synthesis failure",
			gen:  &scriptedGenerator{action: "retrieve", answerErr: errors.New("model down")},
			mod:  func(_ *Service, m *memStore) { m.matches = []Match{{Content: "x", Score: 0.8}} },
			want: "issue retrieving",
		},
		{
			name: "insert failure",
			gen:  &scriptedGenerator{action: "store"},
			mod:  func(_ *Service, m *memStore) { m.insertErr = errors.New("pg down") },
			want: "issue storing",
		},
	}
	for _, tc := range cases {
		store := &memStore{}
		svc := newTestService(tc.gen, store)
		tc.mod(svc, store)

		got := svc.Handle(context.Background(), "anything")
		if !strings.Contains(got, tc.want) {
			t.Errorf("%s: response = %q, want substring %q", tc.name, got, tc.want)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tc := range cases {
		if got := cosineSimilarity(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: cosineSimilarity = %v, want %v", tc.name, got, tc.want)
		}
	}
}
