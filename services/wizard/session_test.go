package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCaptureHydrateRoundTrip(t *testing.T) {
	fl := threeStepFlow()
	w := New(fl, nil)
	w.Update(FormData{"required": "yes", "note": "kept"})
	require.Nil(t, w.Next())

	sess := NewSession(w)
	raw, err := json.Marshal(sess)
	require.NoError(t, err)

	var restored Session
	require.NoError(t, json.Unmarshal(raw, &restored))

	w2 := restored.Hydrate(fl)
	assert.Equal(t, 2, w2.CurrentStep)
	assert.True(t, w2.Completed[1])
	assert.Equal(t, "kept", w2.Form.String("note"))
}

func TestHydrateClampsOutOfRangeStep(t *testing.T) {
	fl := threeStepFlow()
	sess := &Session{Flow: fl.Name, CurrentStep: 99, FormData: FormData{}}
	assert.Equal(t, 3, sess.Hydrate(fl).CurrentStep)

	sess.CurrentStep = 0
	assert.Equal(t, 1, sess.Hydrate(fl).CurrentStep)
}

func TestHydrateNilFormGetsEmptyMap(t *testing.T) {
	fl := threeStepFlow()
	sess := &Session{Flow: fl.Name, CurrentStep: 1}
	w := sess.Hydrate(fl)
	require.NotNil(t, w.Form)
	w.Update(FormData{"required": "safe"})
	assert.Equal(t, "safe", w.Form.String("required"))
}
