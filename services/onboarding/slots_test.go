package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

// aSunday is 2025-06-01 00:00, a Sunday, so the week anchor equals "today".
var aSunday = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateSlotsMondayWednesdayScenario(t *testing.T) {
	rule := models.AvailabilityRule{
		SelectedDays:  []int{1, 3}, // Monday, Wednesday
		StartTime:     "09:00",
		EndTime:       "10:30",
		SlotDuration:  60,
		NumberOfWeeks: 1,
	}

	slots, err := GenerateSlots(rule, aSunday)
	require.NoError(t, err)
	require.Len(t, slots, 2, "the trailing 30 minutes cannot fit another full slot")

	assert.Equal(t, "2025-06-02", slots[0].Date) // Monday
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)

	assert.Equal(t, "2025-06-04", slots[1].Date) // Wednesday
	assert.Equal(t, "09:00", slots[1].StartTime)
	assert.Equal(t, "10:00", slots[1].EndTime)

	for _, s := range slots {
		assert.True(t, s.IsRecurring)
		assert.Equal(t, "weekly", s.RecurrencePattern)
		assert.NotEmpty(t, s.ID)
		assert.LessOrEqual(t, s.EndTime, rule.EndTime, "no slot may spill past the day's end")
	}
}

func TestGenerateSlotsSkipsPastDays(t *testing.T) {
	// Thursday: Monday and Wednesday of this week are already gone.
	thursday := aSunday.AddDate(0, 0, 4)
	rule := models.AvailabilityRule{
		SelectedDays:  []int{1, 3, 5}, // Mon, Wed, Fri
		StartTime:     "09:00",
		EndTime:       "11:00",
		SlotDuration:  60,
		NumberOfWeeks: 1,
	}

	slots, err := GenerateSlots(rule, thursday)
	require.NoError(t, err)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.Date, "2025-06-05", "no slot may be dated before today")
	}
	require.Len(t, slots, 2, "only Friday survives from week one")
	assert.Equal(t, "2025-06-06", slots[0].Date)
}

func TestGenerateSlotsSkipsTodayOnceStartElapsed(t *testing.T) {
	rule := models.AvailabilityRule{
		SelectedDays:  []int{0}, // Sunday only
		StartTime:     "09:00",
		EndTime:       "11:00",
		SlotDuration:  60,
		NumberOfWeeks: 1,
	}

	// 09:30 on Sunday: the day's start time has already passed.
	lateSunday := aSunday.Add(9*time.Hour + 30*time.Minute)
	_, err := GenerateSlots(rule, lateSunday)
	assert.ErrorIs(t, err, ErrNoSlotsGenerated)

	// 08:00 on Sunday: still before the start, today counts.
	earlySunday := aSunday.Add(8 * time.Hour)
	slots, err := GenerateSlots(rule, earlySunday)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestGenerateSlotsMultipleWeeks(t *testing.T) {
	rule := models.AvailabilityRule{
		SelectedDays:  []int{2}, // Tuesday
		StartTime:     "10:00",
		EndTime:       "12:00",
		SlotDuration:  30,
		NumberOfWeeks: 3,
	}

	slots, err := GenerateSlots(rule, aSunday)
	require.NoError(t, err)
	assert.Len(t, slots, 12, "4 slots per Tuesday across 3 weeks")
	assert.Equal(t, "2025-06-03", slots[0].Date)
	assert.Equal(t, "2025-06-17", slots[11].Date)
}

func TestGenerateSlotsErrors(t *testing.T) {
	base := models.AvailabilityRule{
		SelectedDays:  []int{1},
		StartTime:     "09:00",
		EndTime:       "17:00",
		SlotDuration:  60,
		NumberOfWeeks: 1,
	}

	t.Run("no days selected fails fast", func(t *testing.T) {
		rule := base
		rule.SelectedDays = nil
		_, err := GenerateSlots(rule, aSunday)
		assert.ErrorIs(t, err, ErrNoDaysSelected)
	})

	t.Run("start at end yields nothing", func(t *testing.T) {
		rule := base
		rule.StartTime, rule.EndTime = "17:00", "17:00"
		_, err := GenerateSlots(rule, aSunday)
		assert.ErrorIs(t, err, ErrNoSlotsGenerated)
	})

	t.Run("start after end yields nothing", func(t *testing.T) {
		rule := base
		rule.StartTime, rule.EndTime = "18:00", "09:00"
		_, err := GenerateSlots(rule, aSunday)
		assert.ErrorIs(t, err, ErrNoSlotsGenerated)
	})

	t.Run("invalid clock rejected", func(t *testing.T) {
		rule := base
		rule.StartTime = "25:00"
		_, err := GenerateSlots(rule, aSunday)
		assert.Error(t, err)
	})

	t.Run("out of range day indices are ignored", func(t *testing.T) {
		rule := base
		rule.SelectedDays = []int{7, -1}
		_, err := GenerateSlots(rule, aSunday)
		assert.ErrorIs(t, err, ErrNoSlotsGenerated)
	})
}

func TestGenerateSlotsIdempotentPerCall(t *testing.T) {
	rule := models.AvailabilityRule{
		SelectedDays:  []int{1, 3},
		StartTime:     "09:00",
		EndTime:       "12:00",
		SlotDuration:  45,
		NumberOfWeeks: 2,
	}

	first, err := GenerateSlots(rule, aSunday)
	require.NoError(t, err)
	second, err := GenerateSlots(rule, aSunday)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Date, second[i].Date)
		assert.Equal(t, first[i].StartTime, second[i].StartTime)
		assert.Equal(t, first[i].EndTime, second[i].EndTime)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestValidateManualSlot(t *testing.T) {
	ok := models.TimeSlot{StartTime: "09:00", EndTime: "10:00"}
	assert.NoError(t, ValidateManualSlot(ok))

	inverted := models.TimeSlot{StartTime: "10:00", EndTime: "09:00"}
	assert.Error(t, ValidateManualSlot(inverted))

	equal := models.TimeSlot{StartTime: "09:00", EndTime: "09:00"}
	assert.Error(t, ValidateManualSlot(equal))

	malformed := models.TimeSlot{StartTime: "9am", EndTime: "10:00"}
	assert.Error(t, ValidateManualSlot(malformed))
}

// Unpadded clock values parse fine but sort wrong as strings, so the
// validator must order them by parsed minutes.
func TestValidateManualSlotUnpaddedTimes(t *testing.T) {
	ok := models.TimeSlot{StartTime: "9:00", EndTime: "10:00"}
	assert.NoError(t, ValidateManualSlot(ok))

	inverted := models.TimeSlot{StartTime: "10:00", EndTime: "9:00"}
	assert.Error(t, ValidateManualSlot(inverted))

	mixed := models.TimeSlot{StartTime: "9:30", EndTime: "09:45"}
	assert.NoError(t, ValidateManualSlot(mixed))
}
