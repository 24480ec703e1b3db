// File: services/notification/interface.go
package notification

import (
	"context"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

// Notifier is the fire-and-forget user-feedback sink. Implementations must
// never block flow logic and never return delivery failures to the caller.
type Notifier interface {
	Notify(ctx context.Context, payload models.NotificationPayload)
}
