// README: Inbound request and outbound envelope of the agent pipeline.
package agent

import "aura/internal/modules/schedule"

// Request types a caller may declare. An unset type means auto-detect.
const (
	TypeAuto        = "auto"
	TypeDefault     = "default"
	TypeTripPlanner = "trip-planner"
)

// RequestData is the structured payload of a trip-planner request.
// AvailableActivities is grouped by theme, matching the caller's catalog shape.
type RequestData struct {
	TripDetails         schedule.TripDetails           `json:"tripDetails"`
	Requirements        schedule.Requirements          `json:"requirements"`
	AvailableActivities map[string][]schedule.Activity `json:"availableActivities"`
}

// QueryRequest is one inbound call. Either Prompt is set (free-text mode) or
// Structured is true and Data carries the payload.
type QueryRequest struct {
	Prompt     string       `json:"prompt,omitempty"`
	Type       string       `json:"type,omitempty"`
	Structured bool         `json:"structured,omitempty"`
	Data       *RequestData `json:"data,omitempty"`
}

// Envelope wraps every response in a single result field: a synthesized text
// answer for the knowledge workflow, or the TripSchedule object for the
// itinerary workflow.
type Envelope struct {
	Result any `json:"result"`
}
