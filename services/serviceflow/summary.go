// File: services/serviceflow/summary.go
package serviceflow

import (
	"fmt"
	"strings"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

// ReviewSummary renders the review step's display lines. Any malformed
// optional section degrades to "N/A" instead of failing the render.
func ReviewSummary(form wizard.FormData) map[string]string {
	out := map[string]string{
		"name":         fallback(form.String("serviceName")),
		"description":  fallback(form.String("description")),
		"duration":     "N/A",
		"meetingTypes": "N/A",
		"payment":      "Free",
	}
	if d, ok := form.Int("duration"); ok && d > 0 {
		out["duration"] = fmt.Sprintf("%d min", d)
	}

	var types []models.MeetingTypeConfig
	if err := form.Decode("meetingTypes", &types); err == nil {
		enabled := make([]string, 0, len(types))
		for _, mt := range types {
			if mt.Enabled {
				enabled = append(enabled, mt.ID)
			}
		}
		if len(enabled) > 0 {
			out["meetingTypes"] = strings.Join(enabled, ", ")
		}
	}

	if form.Bool("collectPayment") {
		out["payment"] = "Payment collected per booking"
	}
	return out
}

func fallback(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
