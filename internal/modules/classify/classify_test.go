// README: Classifier tests (containment, case folding, safe defaults).
package classify

import (
	"context"
	"errors"
	"testing"
)

// stubGenerator is a test double for ai.TextGenerator.
type stubGenerator struct {
	out   string
	err   error
	calls int
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestQueryType(t *testing.T) {
	cases := []struct {
		name string
		out  string
		err  error
		want QueryType
	}{
		{"bare label", "trip-planner", nil, QueryTypeTripPlanner},
		{"label with extra words", "I believe this is a trip-planner query.", nil, QueryTypeTripPlanner},
		{"case folded", "  TRIP-PLANNER\n", nil, QueryTypeTripPlanner},
		{"default label", "default", nil, QueryTypeDefault},
		{"unrecognized text", "banana", nil, QueryTypeDefault},
		{"empty output", "", nil, QueryTypeDefault},
		{"capability error", "", errors.New("model unavailable"), QueryTypeDefault},
	}
	for _, tc := range cases {
		svc := NewService(&stubGenerator{out: tc.out, err: tc.err}, nil)
		if got := svc.QueryType(context.Background(), "plan my trip"); got != tc.want {
			t.Errorf("%s: QueryType = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAction(t *testing.T) {
	cases := []struct {
		name string
		out  string
		err  error
		want Action
	}{
		{"store", "store", nil, ActionStore},
		{"store with noise", "The answer is: store.", nil, ActionStore},
		{"retrieve", "retrieve", nil, ActionRetrieve},
		{"unrecognized defaults to retrieve", "neither of those", nil, ActionRetrieve},
		{"error defaults to retrieve", "", errors.New("timeout"), ActionRetrieve},
	}
	for _, tc := range cases {
		svc := NewService(&stubGenerator{out: tc.out, err: tc.err}, nil)
		if got := svc.Action(context.Background(), "remember my birthday"); got != tc.want {
			t.Errorf("%s: Action = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestClassify_NilCacheIsSafe(t *testing.T) {
	gen := &stubGenerator{out: "store"}
	svc := NewService(gen, nil)

	svc.Action(context.Background(), "save this")
	svc.Action(context.Background(), "save this")

	// With no cache every call hits the generator.
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
}
