package ai

import "github.com/google/generative-ai-go/genai"

// tripScheduleSchema constrains schedule generation to the wire shape consumed
// downstream. Cost breakdown and summary are deliberately absent: totals are
// computed locally rather than trusted from generated arithmetic.
var tripScheduleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"schedule": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date":      {Type: genai.TypeString, Description: "ISO date, YYYY-MM-DD"},
					"dayNumber": {Type: genai.TypeInteger},
					"items": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"activityId":    {Type: genai.TypeString},
								"scheduledTime": {Type: genai.TypeString, Description: "24h time, HH:MM"},
								"duration":      {Type: genai.TypeString, Description: `e.g. "1h", "2h", "30min"`},
								"status":        {Type: genai.TypeString},
								"notes":         {Type: genai.TypeString},
								"customPrice":   {Type: genai.TypeInteger},
							},
							Required: []string{"activityId", "scheduledTime", "duration"},
						},
					},
					"notes": {Type: genai.TypeString},
				},
				Required: []string{"date", "dayNumber", "items"},
			},
		},
	},
	Required: []string{"schedule"},
}
