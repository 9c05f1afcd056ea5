// README: Cost aggregation: authoritative local totals for generated schedules.
package schedule

import "strings"

// Fallback per-item estimates used when neither a custom price nor a catalog
// price is available. Mid-points of the advisory cost guidance in the prompt.
const (
	defaultTreatmentCost      int64 = 350
	defaultAccommodationCost  int64 = 250
	defaultTransportationCost int64 = 125
	defaultActivityCost       int64 = 200
)

// costCategory buckets an activity theme into one of the four breakdown
// categories. Unrecognized themes count as generic activities.
func costCategory(theme string) string {
	t := strings.ToLower(theme)
	switch {
	case strings.Contains(t, "accommodation"), strings.Contains(t, "hotel"), strings.Contains(t, "stay"):
		return "accommodation"
	case strings.Contains(t, "transport"), strings.Contains(t, "transfer"), strings.Contains(t, "flight"):
		return "transportation"
	case strings.Contains(t, "skincare"), strings.Contains(t, "skin-care"), strings.Contains(t, "surgery"),
		strings.Contains(t, "dental"), strings.Contains(t, "spa"), strings.Contains(t, "wellness"),
		strings.Contains(t, "treatment"), strings.Contains(t, "consultation"), strings.Contains(t, "hair"),
		strings.Contains(t, "beauty"), strings.Contains(t, "medical"):
		return "treatments"
	default:
		return "activities"
	}
}

func categoryDefaultCost(category string) int64 {
	switch category {
	case "treatments":
		return defaultTreatmentCost
	case "accommodation":
		return defaultAccommodationCost
	case "transportation":
		return defaultTransportationCost
	default:
		return defaultActivityCost
	}
}

// Aggregate recomputes day totals, the cost breakdown and the trip summary
// from the schedule items. Pure and deterministic: calling it twice on the
// same schedule yields identical results. Generated arithmetic is never
// trusted; whatever totals generation produced are overwritten here.
//
// Item cost precedence: custom price override, then catalog price, then a
// category-estimated default.
func Aggregate(s *TripSchedule, details TripDetails, activities []Activity) {
	byID := make(map[string]Activity, len(activities))
	for _, act := range activities {
		byID[act.ActivityID] = act
	}

	var breakdown CostBreakdown
	themes := make(map[string]bool)
	totalItems := 0

	for i := range s.Schedule {
		day := &s.Schedule[i]
		var dayTotal int64
		for _, item := range day.Items {
			act, known := byID[item.ActivityID]
			category := costCategory(act.Theme)

			cost := categoryDefaultCost(category)
			if known && act.Price.Amount > 0 {
				cost = act.Price.Amount
			}
			if item.CustomPrice != nil && *item.CustomPrice > 0 {
				cost = *item.CustomPrice
			}

			dayTotal += cost
			switch category {
			case "treatments":
				breakdown.Treatments += cost
			case "accommodation":
				breakdown.Accommodation += cost
			case "transportation":
				breakdown.Transportation += cost
			default:
				breakdown.Activities += cost
			}

			if known && act.Theme != "" {
				themes[act.Theme] = true
			} else {
				themes[category] = true
			}
			totalItems++
		}
		day.TotalCost = dayTotal
	}

	breakdown.Total = breakdown.Treatments + breakdown.Accommodation + breakdown.Transportation + breakdown.Activities
	if details.Budget > 0 {
		breakdown.BudgetUtilization = float64(breakdown.Total) / float64(details.Budget)
	} else {
		breakdown.BudgetUtilization = 0
	}

	s.CostBreakdown = &breakdown
	s.Summary = &Summary{
		TotalDays:       len(s.Schedule),
		TotalActivities: totalItems,
		TotalThemes:     len(themes),
		EstimatedCost:   breakdown.Total,
	}
}
