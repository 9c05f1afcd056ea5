// README: Trip schedule aggregate: wire model for itinerary generation.
package schedule

import "aura/internal/types"

// Field names below are the wire contract with downstream consumers.
// Renaming any json tag is a breaking change.

// ScheduleItem is one scheduled activity occurrence.
type ScheduleItem struct {
	ActivityID    string `json:"activityId"`
	ScheduledTime string `json:"scheduledTime"`
	Duration      string `json:"duration"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	CustomPrice   *int64 `json:"customPrice,omitempty"`
}

// ScheduleDay is one calendar day of the trip.
type ScheduleDay struct {
	Date      string         `json:"date"`
	DayNumber int            `json:"dayNumber"`
	Items     []ScheduleItem `json:"items"`
	Notes     string         `json:"notes,omitempty"`
	TotalCost int64          `json:"totalCost"`
}

// CostBreakdown is the per-category cost rollup, recomputed locally after
// every generation. Total is always the sum of the four category sums.
type CostBreakdown struct {
	Treatments        int64   `json:"treatments"`
	Accommodation     int64   `json:"accommodation"`
	Transportation    int64   `json:"transportation"`
	Activities        int64   `json:"activities"`
	Total             int64   `json:"total"`
	BudgetUtilization float64 `json:"budgetUtilization"`
}

// Summary holds trip-level statistics derived from the schedule.
type Summary struct {
	TotalDays       int   `json:"totalDays"`
	TotalActivities int   `json:"totalActivities"`
	TotalThemes     int   `json:"totalThemes"`
	EstimatedCost   int64 `json:"estimatedCost"`
}

// TripSchedule is the terminal output of the synthesizer (or the fallback).
type TripSchedule struct {
	Schedule      []ScheduleDay  `json:"schedule"`
	CostBreakdown *CostBreakdown `json:"costBreakdown,omitempty"`
	Summary       *Summary       `json:"summary,omitempty"`
}

// DayHours describes one weekday's opening window of a catalog activity.
type DayHours struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// Location is where a catalog activity takes place.
type Location struct {
	Name string `json:"name"`
}

// Activity is a real, bookable service supplied by the caller.
// The pipeline treats the catalog as read-only.
type Activity struct {
	ActivityID   string              `json:"activityId"`
	Name         string              `json:"name"`
	Location     Location            `json:"location"`
	Price        types.Money         `json:"price"`
	Theme        string              `json:"theme"`
	WorkingHours map[string]DayHours `json:"workingHours,omitempty"`
}

// TripDetails carries the trip-level parameters of a structured request.
type TripDetails struct {
	Region          string   `json:"region"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Duration        int      `json:"duration"`
	Themes          []string `json:"themes"`
	Budget          int64    `json:"budget"`
	SolutionType    string   `json:"solutionType"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
}

// Requirements holds free-form constraints forwarded into the prompt.
type Requirements struct {
	DayStructure map[string]any `json:"dayStructure,omitempty"`
}
