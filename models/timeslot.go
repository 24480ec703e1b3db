package models

import "time"

// TimeSlot is one concrete bookable interval.
type TimeSlot struct {
	ID                string `bson:"id" json:"id"`
	ProviderID        string `bson:"providerId,omitempty" json:"providerId,omitempty"`
	Date              string `bson:"date" json:"date"`           // "2006-01-02"
	StartTime         string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime           string `bson:"endTime" json:"endTime"`     // "HH:MM"
	IsRecurring       bool   `bson:"isRecurring" json:"isRecurring"`
	RecurrencePattern string `bson:"recurrencePattern,omitempty" json:"recurrencePattern,omitempty"`
}

// AvailabilityRule is the recurring-availability specification the slot
// generator expands. Day indices follow time.Weekday: Sunday=0.
type AvailabilityRule struct {
	SelectedDays  []int  `bson:"selectedDays" json:"selectedDays"`
	StartTime     string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime       string `bson:"endTime" json:"endTime"`     // "HH:MM"
	NumberOfWeeks int    `bson:"numberOfWeeks" json:"numberOfWeeks"`
	SlotDuration  int    `bson:"slotDuration" json:"slotDuration"` // minutes
}

// BookingLink is the public scheduling link generated during onboarding.
type BookingLink struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId,omitempty" json:"providerId,omitempty"`
	Slug       string    `bson:"slug" json:"slug"`
	URL        string    `bson:"url" json:"url"`
	Status     string    `bson:"status" json:"status"` // "generating" or "ready"
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
