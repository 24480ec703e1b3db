// File: services/onboarding/flow.go
package onboarding

import (
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

// FlowName identifies the provider onboarding wizard in the flow registry.
const FlowName = "onboarding"

// Step positions. The flow is fixed at ten steps.
const (
	StepWelcome = iota + 1
	StepServiceDetails
	StepAvailability
	StepSlotPreview
	StepPricing
	StepPaymentSetup
	StepBookingLink
	StepAccount
	StepNotifications
	StepReview
)

// Defaults seeds a fresh onboarding run.
func Defaults() wizard.FormData {
	return wizard.FormData{
		"providerName": "",
		"category":     "",
		"serviceDetails": map[string]any{
			"name":        "",
			"description": "",
			"duration":    60,
		},
		"availability": map[string]any{
			"selectedDays":  []any{},
			"startTime":     "09:00",
			"endTime":       "17:00",
			"numberOfWeeks": 4,
			"slotDuration":  60,
		},
		"pricingModel":   PricingFixed,
		"price":          0,
		"collectPayment": false,
		"notificationPrefs": map[string]any{
			"emailEnabled": true,
			"smsEnabled":   false,
			"pushEnabled":  false,
		},
	}
}

// NewFlow assembles the ten-step onboarding wizard. Progress runs step/N, so
// step 1 already counts toward the percentage, unlike the service-creation flow.
func NewFlow(complete wizard.CompletionFunc) *wizard.Flow {
	return &wizard.Flow{
		Name: FlowName,
		Steps: []wizard.Step{
			{Name: "welcome", Validate: ValidateWelcome},
			{Name: "serviceDetails", Validate: ValidateServiceDetails},
			{Name: "availability", Validate: ValidateAvailability},
			{Name: "slotPreview"},
			{Name: "pricing", Validate: ValidatePricing},
			{Name: "paymentSetup", Validate: ValidatePaymentSetup},
			{Name: "bookingLink"},
			{Name: "account", Validate: ValidateAccount},
			{Name: "notifications"},
			{Name: "review"},
		},
		Defaults:      Defaults(),
		Progress:      wizard.ProgressOfTotal,
		ValidateField: ValidateField,
		Complete:      complete,
	}
}
