package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

func TestReviewSummaryComplete(t *testing.T) {
	form := wizard.FormData{
		"providerName": "Jane's Therapy",
		"category":     "therapy",
		"pricingModel": PricingFixed,
		"price":        80.0,
		"serviceDetails": map[string]any{
			"name":     "Initial Consultation",
			"duration": 60.0,
		},
		"availability": map[string]any{
			"selectedDays": []any{1.0, 3.0},
			"startTime":    "09:00",
			"endTime":      "17:00",
		},
		"bookingLink": map[string]any{
			"url": "https://book.slotsetter.app/janes-therapy-ab12cd34",
		},
	}

	sum := ReviewSummary(form)
	assert.Equal(t, "Jane's Therapy", sum["provider"])
	assert.Equal(t, "Initial Consultation", sum["serviceName"])
	assert.Equal(t, "60 min", sum["duration"])
	assert.Equal(t, "Mon/Wed, 09:00–17:00", sum["schedule"])
	assert.Equal(t, "$80.00 (fixed)", sum["pricing"])
	assert.Equal(t, "https://book.slotsetter.app/janes-therapy-ab12cd34", sum["bookingLink"])
}

func TestReviewSummaryDegradesGracefully(t *testing.T) {
	// Every section malformed or missing: the render must survive with fallbacks.
	forms := []wizard.FormData{
		{},
		{"serviceDetails": "garbage", "availability": 42, "bookingLink": []any{"x"}},
		{"availability": map[string]any{"selectedDays": []any{"monday"}}},
		{"price": "eighty"},
	}
	for _, form := range forms {
		require.NotPanics(t, func() {
			sum := ReviewSummary(form)
			assert.NotEmpty(t, sum["provider"])
			assert.NotEmpty(t, sum["schedule"])
			assert.NotEmpty(t, sum["pricing"])
		})
	}
}

func TestReviewSummaryRawPriceFallback(t *testing.T) {
	sum := ReviewSummary(wizard.FormData{"price": "eighty"})
	assert.Equal(t, "eighty", sum["pricing"], "malformed price shows the raw value")
}

func TestReviewSummaryDonation(t *testing.T) {
	sum := ReviewSummary(wizard.FormData{"pricingModel": PricingDonation})
	assert.Equal(t, "Donation based", sum["pricing"])
}

func TestReviewSummaryOutOfRangeDayIndex(t *testing.T) {
	form := wizard.FormData{
		"availability": map[string]any{
			"selectedDays": []any{9.0},
			"startTime":    "09:00",
			"endTime":      "10:00",
		},
	}
	sum := ReviewSummary(form)
	assert.Equal(t, "9, 09:00–10:00", sum["schedule"], "unknown indices render literally")
}
