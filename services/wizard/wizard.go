// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"math"
)

// ErrorMap carries field-level validation messages. An empty map means the
// step is valid. Validation failures are values, never errors: they block the
// forward transition and nothing else.
type ErrorMap map[string]string

// StepValidator is the authoritative cross-field check for one step, run only
// by Next() and at submit.
type StepValidator func(FormData) ErrorMap

// FieldValidator is the cheap per-field check rerun as the user edits a single
// field. An empty return clears any previous message for that field.
type FieldValidator func(name string, value any) string

// Step is one position in a flow.
type Step struct {
	Name     string
	Validate StepValidator // nil means the step always passes
}

// ProgressFunc maps (currentStep, totalSteps) to a percentage. The two flows
// ship different conventions and both are user-visible, so the convention
// stays per flow.
type ProgressFunc func(current, total int) int

// CompletionFunc performs the terminal side effect of a finished flow with
// the fully accumulated form data. It runs exactly once per submit attempt;
// on error the wizard stays on its last step and the caller may retry.
type CompletionFunc func(ctx context.Context, form FormData) (any, error)

// Flow is the static description of a wizard: its ordered steps, initial
// defaults, progress convention and validators.
type Flow struct {
	Name          string
	Steps         []Step
	Defaults      FormData
	Progress      ProgressFunc
	ValidateField FieldValidator
	Complete      CompletionFunc
}

func (fl *Flow) StepCount() int {
	return len(fl.Steps)
}

// Wizard is the live state of one flow run: the current step, the set of
// steps advanced past at least once, and the accumulated form data. Each run
// owns its own state; nothing is shared across instances.
type Wizard struct {
	flow        *Flow
	CurrentStep int
	Completed   map[int]bool
	Form        FormData
}

// New starts a wizard at step 1. Initialization layers flow defaults first,
// then caller-supplied initial values (template prefill, edit-existing), with
// the later layer winning.
func New(flow *Flow, initial FormData) *Wizard {
	form := FormData{}
	if flow.Defaults != nil {
		form.Update(flow.Defaults.Clone())
	}
	if initial != nil {
		form.Update(initial)
	}
	return &Wizard{
		flow:        flow,
		CurrentStep: 1,
		Completed:   map[int]bool{},
		Form:        form,
	}
}

// Flow returns the static flow this wizard runs.
func (w *Wizard) Flow() *Flow {
	return w.flow
}

// Next validates the current step against the form. When valid it marks the
// step completed and advances (clamped to the last step), returning nil.
// When invalid it returns the field error map and leaves all state untouched;
// Next never mutates the form either way.
func (w *Wizard) Next() ErrorMap {
	step := w.flow.Steps[w.CurrentStep-1]
	if step.Validate != nil {
		if errs := step.Validate(w.Form); len(errs) > 0 {
			return errs
		}
	}
	w.Completed[w.CurrentStep] = true
	if w.CurrentStep < w.flow.StepCount() {
		w.CurrentStep++
	}
	return nil
}

// Previous steps back, clamped to step 1. It always succeeds and does not
// alter the completed set or the form.
func (w *Wizard) Previous() {
	if w.CurrentStep > 1 {
		w.CurrentStep--
	}
}

// GoTo jumps to a step the user may legally reach: any step at or before the
// current one, or any step already completed. Anything else is a no-op.
func (w *Wizard) GoTo(step int) bool {
	if step < 1 || step > w.flow.StepCount() {
		return false
	}
	if step > w.CurrentStep && !w.Completed[step] {
		return false
	}
	w.CurrentStep = step
	return true
}

// Progress reports the flow's percentage using its own convention.
func (w *Wizard) Progress() int {
	return w.flow.Progress(w.CurrentStep, w.flow.StepCount())
}

// Update merges a partial form edit into the accumulated state.
func (w *Wizard) Update(partial FormData) {
	w.Form.Update(partial)
}

// ValidateField runs the flow's cheap single-field check.
func (w *Wizard) ValidateField(name string, value any) string {
	if w.flow.ValidateField == nil {
		return ""
	}
	return w.flow.ValidateField(name, value)
}

// ValidateCurrent runs the current step's authoritative validator without
// transitioning. Used by submit to refuse incomplete final steps.
func (w *Wizard) ValidateCurrent() ErrorMap {
	step := w.flow.Steps[w.CurrentStep-1]
	if step.Validate == nil {
		return nil
	}
	errs := step.Validate(w.Form)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ProgressFromZero is the service-creation convention: step 1 reads 0%,
// the last step 100%.
func ProgressFromZero(current, total int) int {
	if total <= 1 {
		return 100
	}
	return int(math.Round(float64(current-1) / float64(total-1) * 100))
}

// ProgressOfTotal is the onboarding convention: step 1 already counts.
func ProgressOfTotal(current, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}
