package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"aura/internal/ai"
	"aura/internal/modules/schedule"
)

// One-shot pipeline demo against live Gemini: classifies nothing, just drives
// the itinerary synthesizer directly with a structured request.
func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	planner := schedule.NewService(provider)

	details := schedule.TripDetails{
		Region:    "Seoul",
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		Duration:  3,
		Themes:    []string{"skincare", "spa"},
		Budget:    3000,
	}
	byTheme := map[string][]schedule.Activity{
		"skincare": {
			{ActivityID: "sk_001", Name: "Glow Dermatology", Location: schedule.Location{Name: "Gangnam"}, Theme: "skincare"},
			{ActivityID: "sk_002", Name: "Hanbit Skin Clinic", Location: schedule.Location{Name: "Myeongdong"}, Theme: "skincare"},
		},
		"spa": {
			{ActivityID: "sp_001", Name: "Sul Spa", Location: schedule.Location{Name: "Itaewon"}, Theme: "spa"},
		},
	}

	sched := planner.Synthesize(ctx, details, schedule.Requirements{}, byTheme)

	out, _ := json.MarshalIndent(sched, "", "  ")
	fmt.Println(string(out))
}
