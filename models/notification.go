package models

// NotificationPayload is the fire-and-forget message delivered to a provider.
// Kind is "success", "error" or "info".
type NotificationPayload struct {
	ProviderID string `json:"providerId,omitempty"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Kind       string `json:"kind"`
}

// BookingLinkTaskPayload drives the delayed booking-link generation task.
type BookingLinkTaskPayload struct {
	SessionID    string `json:"sessionId"`
	ProviderName string `json:"providerName"`
}
