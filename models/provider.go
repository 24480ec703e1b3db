package models

import "time"

// NotificationPrefs are the channels a provider opted into during onboarding.
type NotificationPrefs struct {
	EmailEnabled bool   `bson:"emailEnabled" json:"emailEnabled"`
	SMSEnabled   bool   `bson:"smsEnabled" json:"smsEnabled"`
	PushEnabled  bool   `bson:"pushEnabled" json:"pushEnabled"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// Provider is an account created by the onboarding flow.
type Provider struct {
	ID                string            `bson:"id" json:"id"`
	Name              string            `bson:"name" json:"name"`
	Email             string            `bson:"email" json:"email"`
	PasswordHash      string            `bson:"passwordHash,omitempty" json:"-"`
	TokenHash         string            `bson:"tokenHash,omitempty" json:"-"`
	Category          string            `bson:"category,omitempty" json:"category,omitempty"`
	ServiceIDs        []string          `bson:"serviceIds,omitempty" json:"serviceIds,omitempty"`
	BookingLinkID     string            `bson:"bookingLinkId,omitempty" json:"bookingLinkId,omitempty"`
	NotificationPrefs NotificationPrefs `bson:"notificationPrefs" json:"notificationPrefs"`
	CreatedAt         time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ProviderAuthResponse is returned after onboarding completes.
type ProviderAuthResponse struct {
	ID          string    `json:"id"`
	Token       string    `json:"token"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	BookingLink string    `json:"bookingLink,omitempty"`
	ServiceIDs  []string  `json:"serviceIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
