// README: Structural validation and deterministic catalog repair for generated schedules.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// correctionMarker is appended to an item's notes when its activityId had to
// be replaced with a real catalog id.
const correctionMarker = "(Activity ID corrected)"

// validateStructure checks the invariants a generated schedule must satisfy
// before it is returned to a caller. Any violation aborts the attempt; the
// caller degrades to the fallback schedule.
func validateStructure(s *TripSchedule, wantDays int) error {
	if s == nil || len(s.Schedule) == 0 {
		return fmt.Errorf("schedule is empty")
	}
	if wantDays > 0 && len(s.Schedule) != wantDays {
		return fmt.Errorf("schedule has %d days, requested %d", len(s.Schedule), wantDays)
	}
	for i := range s.Schedule {
		day := &s.Schedule[i]
		if day.DayNumber != i+1 {
			return fmt.Errorf("day %d has dayNumber %d, want %d", i+1, day.DayNumber, i+1)
		}
		for j := range day.Items {
			item := &day.Items[j]
			if _, err := time.Parse("15:04", item.ScheduledTime); err != nil {
				return fmt.Errorf("day %d item %d has invalid scheduledTime %q", i+1, j+1, item.ScheduledTime)
			}
			if item.ActivityID == "" {
				return fmt.Errorf("day %d item %d has empty activityId", i+1, j+1)
			}
		}
	}
	return nil
}

// repairActivityIDs enforces referential integrity against the supplied
// catalog: any activityId not present in the catalog is replaced with the
// first catalog id and the item is marked as corrected. The day/time/duration
// structure the generator produced is kept. Returns the number of corrections.
func repairActivityIDs(s *TripSchedule, activities []Activity) int {
	if len(activities) == 0 {
		return 0
	}
	valid := make(map[string]bool, len(activities))
	for _, act := range activities {
		valid[act.ActivityID] = true
	}
	replacement := activities[0].ActivityID

	corrected := 0
	for i := range s.Schedule {
		for j := range s.Schedule[i].Items {
			item := &s.Schedule[i].Items[j]
			if valid[item.ActivityID] {
				continue
			}
			item.ActivityID = replacement
			item.Notes = strings.TrimSpace(item.Notes + " " + correctionMarker)
			corrected++
		}
	}
	return corrected
}
