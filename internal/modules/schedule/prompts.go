// README: Prompt construction for itinerary generation (generic and catalog-constrained).
package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// systemPrompt is the fixed instruction set for every schedule generation.
const systemPrompt = `You are a beauty tourism consultant. Generate a schedule using ONLY the provided real activities.

CRITICAL RULES:
- Use ONLY activityId values from the provided available activities list
- Day 1: Focus on consultations and planning
- Day 2+: Main treatments and procedures
- Final day: Follow-ups and recovery activities
- Schedule items during business hours when possible
- Use realistic time slots and durations
- Each activityId must match exactly from the available activities

COST GUIDELINES (advisory, per item):
- Consultation: $100-300
- Basic treatment: $200-500
- Advanced treatment: $500-1500
- Major procedure: $1500-5000
- Accommodation: $100-400 per night
- Transportation: $50-200 per trip

OUTPUT FORMAT:
- activityId: Must be exact match from available activities
- scheduledTime: Format as "HH:MM" (e.g., "09:00", "14:30")
- duration: Format as "1h", "2h", "30min", etc.
- status: Always "planned"
- notes: Brief description or special instructions`

// buildGenericPrompt covers free-text requests where no activity catalog exists.
func buildGenericPrompt(query string) string {
	return "Request: " + query +
		"\n\nNote: Generate generic activities since no real activity data provided."
}

// buildCatalogPrompt embeds the trip parameters and the flattened catalog so
// every generated activityId can be checked against a real entry.
func buildCatalogPrompt(details TripDetails, reqs Requirements, activities []Activity) string {
	var b strings.Builder

	region := details.Region
	if region == "" {
		region = "Seoul"
	}
	solutionType := details.SolutionType
	if solutionType == "" {
		solutionType = "topranking"
	}

	b.WriteString("Generate a beauty tourism schedule using ONLY the provided real activities.\n\n")
	b.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Region: %s\n", region)
	fmt.Fprintf(&b, "- Dates: %s to %s (%d days)\n", details.StartDate, details.EndDate, details.Duration)
	fmt.Fprintf(&b, "- Themes: %s\n", strings.Join(details.Themes, ", "))
	fmt.Fprintf(&b, "- Budget: $%d USD\n", details.Budget)
	fmt.Fprintf(&b, "- Solution Type: %s\n", solutionType)
	if details.SpecialRequests != "" {
		fmt.Fprintf(&b, "- Special Requests: %s\n", details.SpecialRequests)
	}

	b.WriteString("\nAVAILABLE ACTIVITIES (use activityId exactly as shown):\n")
	for _, act := range activities {
		fmt.Fprintf(&b, "- %s: %s at %s ($%d, %s, Hours: %s)\n",
			act.ActivityID, act.Name, act.Location.Name,
			act.Price.Amount, act.Theme, formatWorkingHours(act.WorkingHours))
	}

	b.WriteString("\nREQUIREMENTS:\n")
	b.WriteString("- Use ONLY activityId values from the list above\n")
	b.WriteString("- Day 1: Focus on consultations\n")
	b.WriteString("- Day 2+: Focus on treatments\n")
	b.WriteString("- Final day: Follow-ups and recovery\n")
	b.WriteString("- Schedule within working hours when possible\n")
	b.WriteString("- Use realistic durations (30min-3h)\n")
	if len(reqs.DayStructure) > 0 {
		fmt.Fprintf(&b, "- Respect the day structure: %s\n", formatDayStructure(reqs.DayStructure))
	}

	b.WriteString("\nIMPORTANT:\n")
	b.WriteString("- activityId must match exactly from the available activities list\n")
	b.WriteString("- scheduledTime should be in HH:MM format (e.g., \"09:00\", \"14:30\")\n")
	b.WriteString("- duration should be like \"1h\", \"2h\", \"30min\"\n")
	b.WriteString("- Only use activities that are provided in the list above\n")

	return b.String()
}

// weekdays in lookup order for a representative opening window.
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// formatWorkingHours picks the first open weekday's window for display.
func formatWorkingHours(hours map[string]DayHours) string {
	if len(hours) == 0 {
		return "Not specified"
	}
	for _, day := range weekdays {
		h, ok := hours[day]
		if ok && h.IsOpen && h.OpenTime != "" && h.CloseTime != "" {
			return h.OpenTime + "-" + h.CloseTime
		}
	}
	return "Varies by day"
}

// formatDayStructure renders the free-form day structure map with stable key
// order so identical requests produce identical prompts.
func formatDayStructure(ds map[string]any) string {
	keys := make([]string, 0, len(ds))
	for k := range ds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, ds[k]))
	}
	return strings.Join(parts, ", ")
}
