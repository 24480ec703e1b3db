// File: services/notification/log.go
package notification

import (
	"context"

	"github.com/Instaresz90008/demo-app-sub000/models"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the application log. It is the default
// sink when no push channel is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, payload models.NotificationPayload) {
	n.Logger.Info("notification",
		zap.String("providerId", payload.ProviderID),
		zap.String("title", payload.Title),
		zap.String("message", payload.Message),
		zap.String("kind", payload.Kind),
	)
}
