// File: services/onboarding/summary.go
package onboarding

import (
	"fmt"
	"strings"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ReviewSummary renders the review step's display lines from whatever is in
// the form. Malformed or missing optional data falls back to "N/A" or the raw
// value; this never fails regardless of form shape.
func ReviewSummary(form wizard.FormData) map[string]string {
	out := map[string]string{
		"provider":    fallback(form.String("providerName")),
		"category":    fallback(form.String("category")),
		"serviceName": "N/A",
		"duration":    "N/A",
		"schedule":    "N/A",
		"pricing":     pricingLine(form),
		"bookingLink": fallback(form.String("bookingLink")),
	}
	if link := form.Section("bookingLink"); link != nil {
		// The link may be stored as a structured record rather than a string.
		out["bookingLink"] = fallback(link.String("url"))
	}

	if details := form.Section("serviceDetails"); details != nil {
		out["serviceName"] = fallback(details.String("name"))
		if d, ok := details.Int("duration"); ok && d > 0 {
			out["duration"] = fmt.Sprintf("%d min", d)
		}
	}

	var rule models.AvailabilityRule
	if err := form.Decode("availability", &rule); err == nil {
		out["schedule"] = scheduleLine(rule)
	}
	return out
}

func scheduleLine(rule models.AvailabilityRule) string {
	if len(rule.SelectedDays) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(rule.SelectedDays))
	for _, d := range rule.SelectedDays {
		if d < 0 || d >= len(dayNames) {
			names = append(names, fmt.Sprintf("%d", d))
			continue
		}
		names = append(names, dayNames[d])
	}
	window := "N/A"
	if rule.StartTime != "" && rule.EndTime != "" {
		window = rule.StartTime + "–" + rule.EndTime
	}
	return fmt.Sprintf("%s, %s", strings.Join(names, "/"), window)
}

func pricingLine(form wizard.FormData) string {
	model := form.String("pricingModel")
	if model == PricingDonation {
		return "Donation based"
	}
	price, ok := form.Float("price")
	if !ok {
		// Show whatever was typed rather than failing the render.
		if raw, exists := form["price"]; exists {
			return fmt.Sprintf("%v", raw)
		}
		return "N/A"
	}
	if model == "" {
		return fmt.Sprintf("$%.2f", price)
	}
	return fmt.Sprintf("$%.2f (%s)", price, model)
}

func fallback(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
