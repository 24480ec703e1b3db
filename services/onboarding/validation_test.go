package onboarding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

func TestValidateWelcome(t *testing.T) {
	assert.Empty(t, ValidateWelcome(wizard.FormData{
		"providerName": "Jane's Therapy",
		"category":     "therapy",
	}))

	errs := ValidateWelcome(wizard.FormData{})
	assert.Contains(t, errs, "providerName")
	assert.Contains(t, errs, "category")
}

func TestValidateServiceDetails(t *testing.T) {
	base := func() wizard.FormData {
		return wizard.FormData{
			"serviceDetails": map[string]any{
				"name":        "Initial Consultation",
				"description": "We talk through what you need and plan next steps.",
				"duration":    60,
			},
		}
	}

	t.Run("valid details pass", func(t *testing.T) {
		assert.Empty(t, ValidateServiceDetails(base()))
	})

	t.Run("missing section blocks", func(t *testing.T) {
		assert.Contains(t, ValidateServiceDetails(wizard.FormData{}), "serviceDetails")
	})

	t.Run("duration outside the onboarding window blocks", func(t *testing.T) {
		form := base()
		form.Section("serviceDetails")["duration"] = 10
		assert.Contains(t, ValidateServiceDetails(form), "duration")

		form.Section("serviceDetails")["duration"] = 481
		assert.Contains(t, ValidateServiceDetails(form), "duration")
	})

	t.Run("multibyte names count by rune", func(t *testing.T) {
		form := base()
		form.Section("serviceDetails")["name"] = strings.Repeat("é", 60)
		assert.Empty(t, ValidateServiceDetails(form))

		form.Section("serviceDetails")["name"] = strings.Repeat("é", 61)
		assert.Contains(t, ValidateServiceDetails(form), "name")
	})

	t.Run("sibling errors report together", func(t *testing.T) {
		form := base()
		form.Section("serviceDetails")["name"] = "Hi"
		form.Section("serviceDetails")["description"] = "short"
		errs := ValidateServiceDetails(form)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "description")
	})
}

func TestValidateAvailability(t *testing.T) {
	valid := wizard.FormData{
		"availability": map[string]any{
			"selectedDays":  []any{1.0, 3.0},
			"startTime":     "09:00",
			"endTime":       "17:00",
			"numberOfWeeks": 4.0,
			"slotDuration":  60.0,
		},
	}
	assert.Empty(t, ValidateAvailability(valid))

	t.Run("start at or past end is allowed here", func(t *testing.T) {
		form := wizard.FormData{
			"availability": map[string]any{
				"selectedDays":  []any{1.0},
				"startTime":     "17:00",
				"endTime":       "09:00",
				"numberOfWeeks": 1.0,
				"slotDuration":  60.0,
			},
		}
		assert.Empty(t, ValidateAvailability(form), "the generator yields nothing for such days; the step does not block")
	})

	t.Run("empty day set blocks", func(t *testing.T) {
		form := wizard.FormData{
			"availability": map[string]any{
				"selectedDays":  []any{},
				"startTime":     "09:00",
				"endTime":       "17:00",
				"numberOfWeeks": 1.0,
				"slotDuration":  60.0,
			},
		}
		assert.Contains(t, ValidateAvailability(form), "selectedDays")
	})

	t.Run("malformed section blocks", func(t *testing.T) {
		assert.Contains(t, ValidateAvailability(wizard.FormData{"availability": "nope"}), "availability")
	})
}

func TestValidatePricing(t *testing.T) {
	tests := []struct {
		name      string
		form      wizard.FormData
		wantField string
	}{
		{"zero price with fixed model blocks", wizard.FormData{"pricingModel": PricingFixed, "price": 0.0}, "price"},
		{"zero price with donation model passes", wizard.FormData{"pricingModel": PricingDonation, "price": 0.0}, ""},
		{"donation ignores price entirely", wizard.FormData{"pricingModel": PricingDonation}, ""},
		{"valid fixed price passes", wizard.FormData{"pricingModel": PricingFixed, "price": 80.0}, ""},
		{"price over ceiling blocks", wizard.FormData{"pricingModel": PricingHourly, "price": 10001.0}, "price"},
		{"missing model blocks", wizard.FormData{"price": 80.0}, "pricingModel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePricing(tt.form)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestPricingWarningsAreAdvisory(t *testing.T) {
	t.Run("below category floor warns", func(t *testing.T) {
		form := wizard.FormData{
			"pricingModel": PricingFixed,
			"category":     "therapy",
			"price":        40.0,
		}
		warnings := PricingWarnings(form)
		assert.Contains(t, warnings, "price")
		assert.Empty(t, ValidatePricing(form), "the warning must not block the transition")
	})

	t.Run("at the floor no warning", func(t *testing.T) {
		form := wizard.FormData{"pricingModel": PricingFixed, "category": "consulting", "price": 50.0}
		assert.Empty(t, PricingWarnings(form))
	})

	t.Run("donation bypasses the floor", func(t *testing.T) {
		form := wizard.FormData{"pricingModel": PricingDonation, "category": "therapy", "price": 1.0}
		assert.Empty(t, PricingWarnings(form))
	})

	t.Run("unknown category has no floor", func(t *testing.T) {
		form := wizard.FormData{"pricingModel": PricingFixed, "category": "tutoring", "price": 5.0}
		assert.Empty(t, PricingWarnings(form))
	})
}

func TestValidatePaymentSetup(t *testing.T) {
	assert.Empty(t, ValidatePaymentSetup(wizard.FormData{"collectPayment": false}))
	assert.Contains(t, ValidatePaymentSetup(wizard.FormData{"collectPayment": true}), "paymentMethod")
	assert.Contains(t, ValidatePaymentSetup(wizard.FormData{"collectPayment": true, "paymentMethod": "cash"}), "paymentMethod")
	assert.Empty(t, ValidatePaymentSetup(wizard.FormData{"collectPayment": true, "paymentMethod": "stripe"}))
}

func TestValidateAccount(t *testing.T) {
	assert.Empty(t, ValidateAccount(wizard.FormData{"email": "jane@example.com", "password": "hunter2hunter2"}))

	errs := ValidateAccount(wizard.FormData{"email": "not-an-email", "password": "short"})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	// Whitespace counts toward the password length; it is not trimmed.
	assert.Empty(t, ValidateAccount(wizard.FormData{"email": "a@b.co", "password": "        "}))
}

func TestOnboardingValidateField(t *testing.T) {
	assert.NotEmpty(t, ValidateField("providerName", "   "))
	assert.Empty(t, ValidateField("providerName", "Jane"))
	assert.NotEmpty(t, ValidateField("duration", 10))
	assert.Empty(t, ValidateField("duration", float64(60)))
	assert.NotEmpty(t, ValidateField("email", "nope"))
	assert.NotEmpty(t, ValidateField("password", "short"))
	assert.Empty(t, ValidateField("somethingElse", nil))
}
