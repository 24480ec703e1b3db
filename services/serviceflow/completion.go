// File: services/serviceflow/completion.go
package serviceflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	serviceRepo "github.com/Instaresz90008/demo-app-sub000/database/repository/service"
	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/notification"
	"github.com/Instaresz90008/demo-app-sub000/services/payments"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// Completer performs the terminal action of the service-creation wizard:
// exactly one create-or-update through the service repository, mirrored into
// the managed-services collection. On failure the wizard session is left
// untouched by the caller so the user can retry with nothing lost.
type Completer struct {
	Services serviceRepo.ServiceRepository
	KV       *utils.KVStore
	Payments payments.Registrar
	Notifier notification.Notifier
	Logger   *zap.Logger
}

// Complete builds the service from the accumulated form and persists it.
// A form carrying a serviceId updates the existing record; otherwise a new
// service is created.
func (c *Completer) Complete(ctx context.Context, form wizard.FormData) (any, error) {
	svc, err := ServiceFromForm(form)
	if err != nil {
		return nil, err
	}

	editing := svc.ID != ""
	if editing {
		if err := c.Services.Replace(ctx, svc); err != nil {
			return nil, fmt.Errorf("failed to save service: %w", err)
		}
	} else {
		svc.ID = uuid.New().String()
		if err := c.Services.Create(ctx, svc); err != nil {
			return nil, err
		}
	}

	if err := c.Payments.RegisterService(ctx, svc); err != nil {
		// Payment registration is repairable later; the service itself is saved.
		c.Logger.Warn("payment registration failed", zap.String("serviceId", svc.ID), zap.Error(err))
	} else if svc.StripeProductID != "" {
		if _, err := c.Services.Update(ctx, svc.ID, map[string]any{
			"stripeProductId": svc.StripeProductID,
			"stripePriceId":   svc.StripePriceID,
		}); err != nil {
			c.Logger.Warn("failed to record stripe ids", zap.String("serviceId", svc.ID), zap.Error(err))
		}
	}

	if err := c.KV.Put(ctx, utils.KVManagedServices, svc.ID, svc); err != nil {
		c.Logger.Warn("failed to mirror service to kv store", zap.String("serviceId", svc.ID), zap.Error(err))
	}

	verb := "created"
	if editing {
		verb = "updated"
	}
	c.Notifier.Notify(ctx, models.NotificationPayload{
		ProviderID: svc.ProviderID,
		Title:      "Service " + verb,
		Message:    fmt.Sprintf("%q is ready for bookings.", svc.Name),
		Kind:       "success",
	})
	return svc, nil
}

// ServiceFromForm materializes the typed service record from generic form
// state. Shape problems in optional sections degrade to empty values rather
// than failing the submit.
func ServiceFromForm(form wizard.FormData) (*models.Service, error) {
	svc := &models.Service{
		ID:             form.String("serviceId"),
		ProviderID:     form.String("providerId"),
		Name:           form.String("serviceName"),
		Description:    form.String("description"),
		Category:       form.String("category"),
		CollectPayment: form.Bool("collectPayment"),
		PricingModel:   form.String("pricingModel"),
		CreatedAt:      time.Now(),
	}
	if d, ok := form.Int("duration"); ok {
		svc.Duration = d
	}

	if err := form.Decode("meetingTypes", &svc.MeetingTypes); err != nil {
		return nil, fmt.Errorf("meeting types are malformed: %w", err)
	}

	if settings := form.Section("additionalSettings"); settings != nil {
		if buffer, ok := settings.Int("bufferTime"); ok {
			svc.AdditionalSettings.BufferTime = buffer
		}
		if advance, ok := settings.Int("maxAdvanceBooking"); ok {
			svc.AdditionalSettings.MaxAdvanceBooking = advance
		}
		if settings["questions"] != nil {
			// Malformed questions drop to none; they are optional data.
			_ = settings.Decode("questions", &svc.AdditionalSettings.Questions)
		}
	}

	if price, ok := form.Float("price"); ok {
		svc.Price = price
	} else if svc.CollectPayment {
		// Fall back to the first enabled meeting type's price.
		for _, mt := range svc.EnabledMeetingTypes() {
			if p, err := strconv.ParseFloat(strings.TrimSpace(mt.Price), 64); err == nil {
				svc.Price = p
				break
			}
		}
	}
	return svc, nil
}
