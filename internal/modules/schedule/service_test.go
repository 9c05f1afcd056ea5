// README: Synthesizer tests: generation paths, catalog repair, fallback degradation.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// stubGenerator is a test double for ai.ScheduleGenerator.
type stubGenerator struct {
	out        string
	err        error
	calls      int
	lastPrompt string
	lastSystem string
}

func (s *stubGenerator) GenerateScheduleJSON(_ context.Context, prompt, system string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastSystem = system
	return s.out, s.err
}

func generated(days ...ScheduleDay) string {
	raw, _ := json.Marshal(TripSchedule{Schedule: days})
	return string(raw)
}

func threeDayCatalogOutput(badID string) string {
	id := func(fallback string) string {
		if badID != "" {
			return badID
		}
		return fallback
	}
	return generated(
		ScheduleDay{Date: "2026-09-07", DayNumber: 1, Items: []ScheduleItem{
			{ActivityID: "sk_001", ScheduledTime: "10:00", Duration: "1h"},
		}},
		ScheduleDay{Date: "2026-09-08", DayNumber: 2, Items: []ScheduleItem{
			{ActivityID: id("sp_001"), ScheduledTime: "11:00", Duration: "2h"},
		}},
		ScheduleDay{Date: "2026-09-09", DayNumber: 3, Items: []ScheduleItem{
			{ActivityID: "sk_001", ScheduledTime: "09:30", Duration: "30min"},
		}},
	)
}

func catalogByTheme() map[string][]Activity {
	return map[string][]Activity{
		"skincare": {
			{ActivityID: "sk_001", Name: "Glow Dermatology", Theme: "skincare"},
			{ActivityID: "sk_002", Name: "Hanbit Skin Clinic", Theme: "skincare"},
			{ActivityID: "sk_003", Name: "Seoul Derma", Theme: "skincare"},
		},
		"spa": {
			{ActivityID: "sp_001", Name: "Sul Spa", Theme: "spa"},
			{ActivityID: "sp_002", Name: "Onsen House", Theme: "spa"},
		},
	}
}

func tripDetails() TripDetails {
	return TripDetails{
		Region:    "Seoul",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		Duration:  3,
		Themes:    []string{"skincare", "spa"},
		Budget:    3000,
	}
}

func TestSynthesize_CatalogConstrained(t *testing.T) {
	gen := &stubGenerator{out: threeDayCatalogOutput("")}
	svc := NewService(gen)

	sched := svc.Synthesize(context.Background(), tripDetails(), Requirements{}, catalogByTheme())

	if len(sched.Schedule) != 3 {
		t.Fatalf("got %d days, want 3", len(sched.Schedule))
	}
	if sched.CostBreakdown == nil || sched.Summary == nil {
		t.Fatal("expected derived totals on synthesized schedule")
	}
	if sched.Summary.TotalDays != 3 {
		t.Errorf("totalDays = %d, want 3", sched.Summary.TotalDays)
	}
	// catalog prompts carry the flattened activities
	if !strings.Contains(gen.lastPrompt, "sk_002") || !strings.Contains(gen.lastPrompt, "sp_002") {
		t.Errorf("prompt missing catalog entries:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastSystem, "beauty tourism consultant") {
		t.Errorf("unexpected system instruction:\n%s", gen.lastSystem)
	}
	// default status fill-in
	for _, day := range sched.Schedule {
		for _, item := range day.Items {
			if item.Status != "planned" {
				t.Errorf("item status = %q, want planned", item.Status)
			}
		}
	}
}

func TestSynthesize_RepairsUnknownActivityID(t *testing.T) {
	gen := &stubGenerator{out: threeDayCatalogOutput("invented_by_model")}
	svc := NewService(gen)

	sched := svc.Synthesize(context.Background(), tripDetails(), Requirements{}, catalogByTheme())

	item := sched.Schedule[1].Items[0]
	// first id of the flattened catalog: themes sort as skincare < spa
	if item.ActivityID != "sk_001" {
		t.Errorf("activityId = %q, want sk_001", item.ActivityID)
	}
	if !strings.Contains(item.Notes, correctionMarker) {
		t.Errorf("notes %q missing correction marker", item.Notes)
	}
}

func TestSynthesize_GenerationErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("capability down")}
	svc := NewService(gen)

	sched := svc.Synthesize(context.Background(), tripDetails(), Requirements{}, catalogByTheme())

	if !reflect.DeepEqual(sched, Fallback()) {
		t.Errorf("expected the exact fallback schedule, got %+v", sched)
	}
}

func TestSynthesize_MalformedJSONFallsBack(t *testing.T) {
	gen := &stubGenerator{out: "here is your schedule: {not json"}
	svc := NewService(gen)

	sched := svc.Synthesize(context.Background(), tripDetails(), Requirements{}, catalogByTheme())
	if !reflect.DeepEqual(sched, Fallback()) {
		t.Error("expected fallback for malformed JSON")
	}
}

func TestSynthesize_DayCountMismatchFallsBack(t *testing.T) {
	gen := &stubGenerator{out: generated(ScheduleDay{Date: "2026-09-07", DayNumber: 1, Items: []ScheduleItem{
		{ActivityID: "sk_001", ScheduledTime: "10:00", Duration: "1h"},
	}})}
	svc := NewService(gen)

	// requested 3 days, generator produced 1
	sched := svc.Synthesize(context.Background(), tripDetails(), Requirements{}, catalogByTheme())
	if !reflect.DeepEqual(sched, Fallback()) {
		t.Error("expected fallback for day count mismatch")
	}
}

func TestSynthesize_EmptyCatalogRunsGenericMode(t *testing.T) {
	gen := &stubGenerator{out: threeDayCatalogOutput("")}
	svc := NewService(gen)

	svc.Synthesize(context.Background(), tripDetails(), Requirements{}, nil)

	if strings.Contains(gen.lastPrompt, "AVAILABLE ACTIVITIES") {
		t.Errorf("generic mode prompt should not embed a catalog:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "no real activity data provided") {
		t.Errorf("generic mode note missing from prompt:\n%s", gen.lastPrompt)
	}
}

func TestSynthesizeFromPrompt(t *testing.T) {
	gen := &stubGenerator{out: generated(ScheduleDay{Date: "2026-09-07", DayNumber: 1, Items: []ScheduleItem{
		{ActivityID: "generic_consultation", ScheduledTime: "09:00", Duration: "2h"},
	}})}
	svc := NewService(gen)

	sched := svc.SynthesizeFromPrompt(context.Background(), "plan me a two day skincare trip")
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
	if !strings.Contains(gen.lastPrompt, "plan me a two day skincare trip") {
		t.Errorf("prompt missing user request:\n%s", gen.lastPrompt)
	}
	if sched.Summary == nil || sched.Summary.TotalActivities != 1 {
		t.Errorf("unexpected summary: %+v", sched.Summary)
	}
}

func TestFallback_Invariants(t *testing.T) {
	f := Fallback()

	if len(f.Schedule) == 0 || len(f.Schedule[0].Items) == 0 {
		t.Fatal("fallback must contain at least one day with one item")
	}
	b := f.CostBreakdown
	if b == nil || f.Summary == nil {
		t.Fatal("fallback must carry derived totals")
	}
	if want := b.Treatments + b.Accommodation + b.Transportation + b.Activities; b.Total != want {
		t.Errorf("fallback total %d != category sum %d", b.Total, want)
	}
	if f.Summary.EstimatedCost != b.Total {
		t.Errorf("fallback estimatedCost %d != total %d", f.Summary.EstimatedCost, b.Total)
	}
	if f.Summary.TotalDays != len(f.Schedule) {
		t.Errorf("fallback totalDays %d != schedule length %d", f.Summary.TotalDays, len(f.Schedule))
	}
	if f.Schedule[0].Notes != fallbackNotes {
		t.Errorf("fallback day notes = %q, want degraded marker", f.Schedule[0].Notes)
	}
	if err := validateStructure(f, 0); err != nil {
		t.Errorf("fallback fails structural validation: %v", err)
	}
}

func TestNormalizeDuration(t *testing.T) {
	cases := []struct {
		name    string
		details TripDetails
		want    int
	}{
		{"explicit duration wins", TripDetails{Duration: 5, StartDate: "2026-09-07", EndDate: "2026-09-08"}, 5},
		{"derived from dates", TripDetails{StartDate: "2026-09-07", EndDate: "2026-09-09"}, 3},
		{"single day", TripDetails{StartDate: "2026-09-07", EndDate: "2026-09-07"}, 1},
		{"missing dates", TripDetails{}, 0},
		{"end before start", TripDetails{StartDate: "2026-09-09", EndDate: "2026-09-07"}, 0},
		{"unparseable", TripDetails{StartDate: "next tuesday", EndDate: "2026-09-09"}, 0},
	}
	for _, tc := range cases {
		if got := normalizeDuration(tc.details); got != tc.want {
			t.Errorf("%s: normalizeDuration = %d, want %d", tc.name, got, tc.want)
		}
	}
}
