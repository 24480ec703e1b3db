package models

import "time"

// Meeting type identifiers. The set is fixed; a service enables any subset.
const (
	MeetingTypeVideo    = "video"
	MeetingTypePhone    = "phone"
	MeetingTypeInPerson = "in-person"
)

// MeetingTypeConfig is the per-type configuration a service carries for one
// delivery mode. Only the fields matching the ID are meaningful; the rest stay
// empty. Shape is validated where the config is constructed, not during
// rendering or summarization.
type MeetingTypeConfig struct {
	ID      string `bson:"id" json:"id"` // "video", "phone" or "in-person"
	Enabled bool   `bson:"enabled" json:"enabled"`
	Price   string `bson:"price" json:"price"` // decimal string, e.g. "25.00"

	// Video.
	MeetingLink     string `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	MeetingPasscode string `bson:"meetingPasscode,omitempty" json:"meetingPasscode,omitempty"`
	MaxParticipants int    `bson:"maxParticipants,omitempty" json:"maxParticipants,omitempty"`

	// Phone.
	PhoneNumber  string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	BridgeNumber string `bson:"bridgeNumber,omitempty" json:"bridgeNumber,omitempty"`

	// In person.
	Location         string `bson:"location,omitempty" json:"location,omitempty"`
	ParkingAvailable bool   `bson:"parkingAvailable,omitempty" json:"parkingAvailable,omitempty"`
	Refreshments     bool   `bson:"refreshments,omitempty" json:"refreshments,omitempty"`
}

// Question types accepted on intake forms.
const (
	QuestionTypeText     = "text"
	QuestionTypeEmail    = "email"
	QuestionTypePhone    = "phone"
	QuestionTypeTextarea = "textarea"
	QuestionTypeSelect   = "select"
	QuestionTypeCheckbox = "checkbox"
)

// ServiceQuestion is one intake question attached to a service. Options are
// only meaningful for select/checkbox types and keep their insertion order.
type ServiceQuestion struct {
	ID          string   `bson:"id" json:"id"`
	Text        string   `bson:"text" json:"text"`
	Type        string   `bson:"type" json:"type"`
	Required    bool     `bson:"required" json:"required"`
	Options     []string `bson:"options,omitempty" json:"options,omitempty"`
	Placeholder string   `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}

// AdditionalSettings groups the step-3 service options.
type AdditionalSettings struct {
	BufferTime        int               `bson:"bufferTime" json:"bufferTime"`               // minutes, [0,120]
	MaxAdvanceBooking int               `bson:"maxAdvanceBooking" json:"maxAdvanceBooking"` // days, [1,365]
	Questions         []ServiceQuestion `bson:"questions,omitempty" json:"questions,omitempty"`
}

// Service is a bookable service owned by a provider.
type Service struct {
	ID                 string              `bson:"id" json:"id"`
	ProviderID         string              `bson:"providerId,omitempty" json:"providerId,omitempty"`
	Name               string              `bson:"name" json:"name"`
	Description        string              `bson:"description" json:"description"`
	Duration           int                 `bson:"duration" json:"duration"` // minutes
	Category           string              `bson:"category,omitempty" json:"category,omitempty"`
	MeetingTypes       []MeetingTypeConfig `bson:"meetingTypes" json:"meetingTypes"`
	CollectPayment     bool                `bson:"collectPayment" json:"collectPayment"`
	PricingModel       string              `bson:"pricingModel,omitempty" json:"pricingModel,omitempty"`
	Price              float64             `bson:"price,omitempty" json:"price,omitempty"`
	AdditionalSettings AdditionalSettings  `bson:"additionalSettings" json:"additionalSettings"`
	StripeProductID    string              `bson:"stripeProductId,omitempty" json:"stripeProductId,omitempty"`
	StripePriceID      string              `bson:"stripePriceId,omitempty" json:"stripePriceId,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// EnabledMeetingTypes returns the configs with Enabled set, in declaration order.
func (s Service) EnabledMeetingTypes() []MeetingTypeConfig {
	var enabled []MeetingTypeConfig
	for _, mt := range s.MeetingTypes {
		if mt.Enabled {
			enabled = append(enabled, mt)
		}
	}
	return enabled
}
