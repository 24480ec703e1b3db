// File: services/serviceflow/flow.go
package serviceflow

import (
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

// FlowName identifies the service-creation wizard in the flow registry.
const FlowName = "service-creation"

// Step positions. The flow is fixed at four steps.
const (
	StepBasicInfo = iota + 1
	StepMeetingTypes
	StepAdditionalSettings
	StepReview
)

// Defaults seeds a fresh run. Template prefill and edit-existing values are
// layered on top by the caller.
func Defaults() wizard.FormData {
	return wizard.FormData{
		"serviceName":    "",
		"description":    "",
		"duration":       30,
		"collectPayment": false,
		"meetingTypes":   []any{},
		"additionalSettings": map[string]any{
			"bufferTime":        0,
			"maxAdvanceBooking": 30,
			"questions":         []any{},
		},
	}
}

// NewFlow assembles the four-step service-creation wizard. Progress runs
// (step-1)/(N-1), so the first step reads 0%.
func NewFlow(complete wizard.CompletionFunc) *wizard.Flow {
	return &wizard.Flow{
		Name: FlowName,
		Steps: []wizard.Step{
			{Name: "basicInfo", Validate: ValidateBasicInfo},
			{Name: "meetingTypes", Validate: ValidateMeetingTypes},
			{Name: "additionalSettings", Validate: ValidateAdditionalSettings},
			{Name: "review"}, // review re-validates nothing; submit is the gate
		},
		Defaults:      Defaults(),
		Progress:      wizard.ProgressFromZero,
		ValidateField: ValidateField,
		Complete:      complete,
	}
}
