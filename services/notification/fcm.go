// File: services/notification/fcm.go
package notification

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	providerRepo "github.com/Instaresz90008/demo-app-sub000/database/repository/provider"
	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// FCMNotifier pushes notifications to the provider's registered device.
// Delivery problems are logged and swallowed; the sink stays fire-and-forget.
type FCMNotifier struct {
	Providers providerRepo.ProviderRepository
	Logger    *zap.Logger
}

func NewFCMNotifier(providers providerRepo.ProviderRepository, logger *zap.Logger) *FCMNotifier {
	return &FCMNotifier{Providers: providers, Logger: logger}
}

func (n *FCMNotifier) Notify(ctx context.Context, payload models.NotificationPayload) {
	if utils.FCMClient == nil || payload.ProviderID == "" {
		return
	}

	p, err := n.Providers.GetByID(ctx, payload.ProviderID)
	if err != nil || !p.NotificationPrefs.PushEnabled || p.NotificationPrefs.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: p.NotificationPrefs.FCMToken,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Message,
		},
		Data: map[string]string{"kind": payload.Kind},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		n.Logger.Warn("failed to send push notification",
			zap.String("providerId", payload.ProviderID), zap.Error(err))
	}
}
