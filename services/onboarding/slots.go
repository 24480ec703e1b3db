// File: services/onboarding/slots.go
package onboarding

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

var (
	// ErrNoDaysSelected is returned before any expansion when the day set is empty.
	ErrNoDaysSelected = errors.New("select at least one day of the week")
	// ErrNoSlotsGenerated is returned when the expansion produced nothing, so
	// the caller reports a condition instead of silently succeeding with zero results.
	ErrNoSlotsGenerated = errors.New("no slots could be generated for the chosen availability")
)

// GenerateSlots expands a recurring-availability rule into concrete slots.
// Weeks are anchored at the start of the current week (Sunday, matching the
// day indices 0–6). Days strictly before today are skipped, and today is
// skipped entirely once its start time has elapsed. Within a day, the cursor
// emits full slots only: a trailing window shorter than the slot duration
// yields nothing. A day whose start is at or past its end yields zero slots
// without error.
func GenerateSlots(rule models.AvailabilityRule, now time.Time) ([]models.TimeSlot, error) {
	if len(rule.SelectedDays) == 0 {
		return nil, ErrNoDaysSelected
	}
	if rule.NumberOfWeeks < 1 {
		return nil, fmt.Errorf("availability must cover at least one week")
	}
	if rule.SlotDuration <= 0 {
		return nil, fmt.Errorf("slot duration must be positive")
	}

	startMin, err := ParseClock(rule.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	endMin, err := ParseClock(rule.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	days := append([]int(nil), rule.SelectedDays...)
	sort.Ints(days)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	var slots []models.TimeSlot
	for week := 0; week < rule.NumberOfWeeks; week++ {
		for _, day := range days {
			if day < 0 || day > 6 {
				continue
			}
			target := weekStart.AddDate(0, 0, week*7+day)
			if target.Before(today) {
				continue
			}
			if target.Equal(today) {
				dayStart := target.Add(time.Duration(startMin) * time.Minute)
				if dayStart.Before(now) {
					continue
				}
			}

			dateStr := target.Format("2006-01-02")
			for cursor := startMin; cursor+rule.SlotDuration <= endMin; cursor += rule.SlotDuration {
				slots = append(slots, models.TimeSlot{
					ID:                uuid.New().String(),
					Date:              dateStr,
					StartTime:         FormatClock(cursor),
					EndTime:           FormatClock(cursor + rule.SlotDuration),
					IsRecurring:       true,
					RecurrencePattern: "weekly",
				})
			}
		}
	}

	if len(slots) == 0 {
		return nil, ErrNoSlotsGenerated
	}
	return slots, nil
}

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateManualSlot is the only check applied to slots entered outside the
// generator: start must precede end. The comparison runs on parsed minutes so
// unpadded input like "9:00" orders correctly.
func ValidateManualSlot(slot models.TimeSlot) error {
	start, err := ParseClock(slot.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(slot.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("slot start time must be before its end time")
	}
	return nil
}
