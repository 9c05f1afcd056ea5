// README: Itinerary synthesizer: prompt build, schema-bound generation, validation, fallback.
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"aura/internal/ai"
)

// Service turns trip requests into validated schedules. Synthesis never fails
// from the caller's point of view: any generation, parse or validation error
// degrades to the fallback schedule. There is no retry of the generation call.
type Service struct {
	gen ai.ScheduleGenerator
}

// NewService creates a Service backed by the given schedule generator.
func NewService(gen ai.ScheduleGenerator) *Service {
	return &Service{gen: gen}
}

// SynthesizeFromPrompt handles free-text trip-planner requests where no
// activity catalog exists. The generator is asked for generic activities.
func (s *Service) SynthesizeFromPrompt(ctx context.Context, query string) *TripSchedule {
	out, err := s.attempt(ctx, buildGenericPrompt(query), TripDetails{}, nil)
	if err != nil {
		log.Printf("schedule: generic synthesis failed, using fallback: %v", err)
		return Fallback()
	}
	return out
}

// Synthesize handles structured trip-planner requests. When the caller
// supplies an activity catalog the prompt is constrained to it and every
// generated activityId is checked (and if needed repaired) against it; with
// an empty catalog the synthesizer runs in generic mode.
func (s *Service) Synthesize(ctx context.Context, details TripDetails, reqs Requirements, byTheme map[string][]Activity) *TripSchedule {
	details.Duration = normalizeDuration(details)
	activities := flattenCatalog(byTheme)

	var prompt string
	if len(activities) == 0 {
		prompt = buildGenericPrompt(describeTrip(details))
	} else {
		prompt = buildCatalogPrompt(details, reqs, activities)
	}

	out, err := s.attempt(ctx, prompt, details, activities)
	if err != nil {
		log.Printf("schedule: structured synthesis failed, using fallback: %v", err)
		return Fallback()
	}
	return out
}

// attempt runs one generation pass. Each stage returns an explicit error; the
// callers map any error to the fallback rather than letting it escape.
func (s *Service) attempt(ctx context.Context, prompt string, details TripDetails, activities []Activity) (*TripSchedule, error) {
	raw, err := s.gen.GenerateScheduleJSON(ctx, prompt, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	var sched TripSchedule
	if err := json.Unmarshal([]byte(raw), &sched); err != nil {
		return nil, fmt.Errorf("parse generated JSON: %w", err)
	}

	applyDefaults(&sched)
	if err := validateStructure(&sched, details.Duration); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	if n := repairActivityIDs(&sched, activities); n > 0 {
		log.Printf("schedule: corrected %d activity id(s) not present in catalog", n)
	}

	Aggregate(&sched, details, activities)
	return &sched, nil
}

// applyDefaults fills fields the generator may omit.
func applyDefaults(s *TripSchedule) {
	for i := range s.Schedule {
		for j := range s.Schedule[i].Items {
			if s.Schedule[i].Items[j].Status == "" {
				s.Schedule[i].Items[j].Status = "planned"
			}
		}
	}
}

// flattenCatalog merges the theme-grouped catalog into one list with a stable
// order. Stability matters: the id repair step substitutes the first catalog
// entry, which must not depend on map iteration order.
func flattenCatalog(byTheme map[string][]Activity) []Activity {
	if len(byTheme) == 0 {
		return nil
	}
	themes := make([]string, 0, len(byTheme))
	for theme := range byTheme {
		themes = append(themes, theme)
	}
	sort.Strings(themes)

	var all []Activity
	for _, theme := range themes {
		all = append(all, byTheme[theme]...)
	}
	return all
}

// normalizeDuration derives the day count from the date range when the caller
// left the duration unset.
func normalizeDuration(details TripDetails) int {
	if details.Duration > 0 {
		return details.Duration
	}
	if details.StartDate == "" || details.EndDate == "" {
		return 0
	}
	start, err1 := time.Parse("2006-01-02", details.StartDate)
	end, err2 := time.Parse("2006-01-02", details.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// describeTrip renders structured trip details as request text for the
// generic prompt path.
func describeTrip(details TripDetails) string {
	return fmt.Sprintf("Plan a %d-day beauty tour of %s from %s to %s with a budget of $%d USD. %s",
		details.Duration, details.Region, details.StartDate, details.EndDate, details.Budget, details.SpecialRequests)
}
