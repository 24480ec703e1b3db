package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStepFlow() *Flow {
	return &Flow{
		Name: "test-flow",
		Steps: []Step{
			{Name: "first", Validate: func(f FormData) ErrorMap {
				if f.String("required") == "" {
					return ErrorMap{"required": "required is required"}
				}
				return nil
			}},
			{Name: "second"},
			{Name: "third"},
		},
		Defaults: FormData{"required": "", "seeded": true},
		Progress: ProgressFromZero,
	}
}

func TestNextBlockedByValidation(t *testing.T) {
	w := New(threeStepFlow(), nil)

	errs := w.Next()
	require.NotNil(t, errs)
	assert.Equal(t, "required is required", errs["required"])
	assert.Equal(t, 1, w.CurrentStep, "a failed transition must not move the wizard")
	assert.Empty(t, w.Completed)
}

func TestNextAdvancesAndMarksCompleted(t *testing.T) {
	w := New(threeStepFlow(), nil)
	w.Update(FormData{"required": "yes"})

	require.Nil(t, w.Next())
	assert.Equal(t, 2, w.CurrentStep)
	assert.True(t, w.Completed[1])
}

func TestNextDoesNotMutateForm(t *testing.T) {
	w := New(threeStepFlow(), nil)
	w.Update(FormData{"required": "yes", "other": 42})
	before := w.Form.Clone()

	w.Next()
	w.Previous()
	assert.Equal(t, before, w.Form)
}

func TestNextClampsAtLastStep(t *testing.T) {
	w := New(threeStepFlow(), nil)
	w.Update(FormData{"required": "yes"})
	for i := 0; i < 5; i++ {
		require.Nil(t, w.Next())
	}
	assert.Equal(t, 3, w.CurrentStep)
	assert.True(t, w.Completed[3])
}

func TestPreviousClampsAtFirstStep(t *testing.T) {
	w := New(threeStepFlow(), nil)
	w.Previous()
	w.Previous()
	assert.Equal(t, 1, w.CurrentStep)
}

func TestGoToRules(t *testing.T) {
	w := New(threeStepFlow(), nil)
	w.Update(FormData{"required": "yes"})
	require.Nil(t, w.Next())
	require.Nil(t, w.Next()) // now at step 3, steps 1 and 2 completed

	assert.True(t, w.GoTo(1), "backward jumps are always allowed")
	assert.Equal(t, 1, w.CurrentStep)

	assert.True(t, w.GoTo(2), "completed steps are reachable")
	assert.Equal(t, 2, w.CurrentStep)

	assert.False(t, w.GoTo(3), "step 3 was visited but never completed")
	assert.Equal(t, 2, w.CurrentStep)

	assert.False(t, w.GoTo(0))
	assert.False(t, w.GoTo(4))
}

func TestNewLayersInitialOverDefaults(t *testing.T) {
	w := New(threeStepFlow(), FormData{"required": "from-template"})
	assert.Equal(t, "from-template", w.Form.String("required"))
	assert.True(t, w.Form.Bool("seeded"))
}

func TestDefaultsNotSharedAcrossRuns(t *testing.T) {
	fl := threeStepFlow()
	a := New(fl, nil)
	b := New(fl, nil)

	a.Update(FormData{"required": "only-a"})
	assert.Equal(t, "", b.Form.String("required"))
}

func TestProgressConventions(t *testing.T) {
	tests := []struct {
		name    string
		fn      ProgressFunc
		current int
		total   int
		want    int
	}{
		{"from zero, first step", ProgressFromZero, 1, 4, 0},
		{"from zero, second step", ProgressFromZero, 2, 4, 33},
		{"from zero, last step", ProgressFromZero, 4, 4, 100},
		{"of total, first step", ProgressOfTotal, 1, 10, 10},
		{"of total, mid step", ProgressOfTotal, 5, 10, 50},
		{"of total, last step", ProgressOfTotal, 10, 10, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.current, tt.total))
		})
	}
}

func TestValidateCurrentDoesNotTransition(t *testing.T) {
	w := New(threeStepFlow(), nil)
	errs := w.ValidateCurrent()
	require.NotNil(t, errs)
	assert.Equal(t, 1, w.CurrentStep)
	assert.Empty(t, w.Completed)
}
