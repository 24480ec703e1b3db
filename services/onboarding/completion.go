// File: services/onboarding/completion.go
package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	providerRepo "github.com/Instaresz90008/demo-app-sub000/database/repository/provider"
	serviceRepo "github.com/Instaresz90008/demo-app-sub000/database/repository/service"
	timeslotRepo "github.com/Instaresz90008/demo-app-sub000/database/repository/timeslot"
	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/notification"
	"github.com/Instaresz90008/demo-app-sub000/services/tasks"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// Completer finishes onboarding: it creates the provider account, its first
// service, the expanded timeslots, and the booking link, then issues an auth
// token. Any failure leaves the wizard session untouched for a retry.
type Completer struct {
	Providers   providerRepo.ProviderRepository
	Services    serviceRepo.ServiceRepository
	Timeslots   timeslotRepo.TimeSlotRepository
	KV          *utils.KVStore
	Notifier    notification.Notifier
	AsynqClient *asynq.Client
	Logger      *zap.Logger

	// now is overridable so slot expansion is deterministic under test.
	now func() time.Time
}

func (c *Completer) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *Completer) Complete(ctx context.Context, form wizard.FormData) (any, error) {
	email := form.String("email")
	password, _ := form["password"].(string)
	if email == "" || password == "" {
		return nil, fmt.Errorf("account details are incomplete")
	}

	existing, err := c.Providers.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing provider: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a provider with email %s already exists", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := c.clock()
	provider := models.Provider{
		ID:           uuid.New().String(),
		Name:         form.String("providerName"),
		Email:        email,
		PasswordHash: string(hashed),
		Category:     form.String("category"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Preference shape problems fall back to defaults; they are optional data.
	_ = form.Decode("notificationPrefs", &provider.NotificationPrefs)

	svc, err := c.buildService(form, provider.ID)
	if err != nil {
		return nil, err
	}

	var rule models.AvailabilityRule
	if err := form.Decode("availability", &rule); err != nil {
		return nil, fmt.Errorf("availability is malformed: %w", err)
	}
	slots, err := GenerateSlots(rule, c.clock())
	if err != nil {
		return nil, err
	}
	for i := range slots {
		slots[i].ProviderID = provider.ID
	}

	link := c.resolveLink(form, provider.Name)
	link.ProviderID = provider.ID

	if err := c.Services.Create(ctx, svc); err != nil {
		return nil, err
	}
	if _, err := c.Timeslots.CreateMany(ctx, slots); err != nil {
		c.rollback(ctx, svc.ID, provider.ID)
		return nil, err
	}
	if err := c.KV.Put(ctx, utils.KVBookingLinks, link.ID, link); err != nil {
		c.Logger.Warn("failed to record booking link", zap.String("linkId", link.ID), zap.Error(err))
	}

	provider.ServiceIDs = []string{svc.ID}
	provider.BookingLinkID = link.ID
	if err := c.Providers.Create(ctx, &provider); err != nil {
		c.rollback(ctx, svc.ID, provider.ID)
		return nil, err
	}

	token, err := utils.GenerateToken(provider.ID, provider.Email, 24*time.Hour)
	if err != nil {
		c.rollback(ctx, svc.ID, provider.ID)
		c.discardProvider(ctx, provider.ID)
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	provider.TokenHash = utils.HashToken(token)
	if err := c.Providers.Update(ctx, &provider); err != nil {
		c.rollback(ctx, svc.ID, provider.ID)
		c.discardProvider(ctx, provider.ID)
		return nil, fmt.Errorf("failed to store auth token: %w", err)
	}

	c.sendWelcome(ctx, provider)

	return &models.ProviderAuthResponse{
		ID:          provider.ID,
		Token:       token,
		Name:        provider.Name,
		Email:       provider.Email,
		BookingLink: link.URL,
		ServiceIDs:  provider.ServiceIDs,
		CreatedAt:   provider.CreatedAt,
	}, nil
}

// rollback discards the service and slot records persisted before a later
// step failed, so a retried submit does not duplicate them. Cleanup failures
// are logged and swallowed; the original error is what the caller reports.
func (c *Completer) rollback(ctx context.Context, serviceID, slotOwnerID string) {
	if slotOwnerID != "" {
		if err := c.Timeslots.DeleteByProviderID(ctx, slotOwnerID); err != nil {
			c.Logger.Warn("failed to discard timeslots after completion error",
				zap.String("providerId", slotOwnerID), zap.Error(err))
		}
	}
	if err := c.Services.Delete(ctx, serviceID); err != nil {
		c.Logger.Warn("failed to discard service after completion error",
			zap.String("serviceId", serviceID), zap.Error(err))
	}
}

// discardProvider removes a provider whose auth token could not be stored, so
// a retried submit does not trip the duplicate-email check.
func (c *Completer) discardProvider(ctx context.Context, providerID string) {
	if err := c.Providers.Delete(ctx, providerID); err != nil {
		c.Logger.Warn("failed to discard provider after completion error",
			zap.String("providerId", providerID), zap.Error(err))
	}
}

func (c *Completer) buildService(form wizard.FormData, providerID string) (*models.Service, error) {
	details := form.Section("serviceDetails")
	if details == nil {
		return nil, fmt.Errorf("service details are incomplete")
	}
	svc := &models.Service{
		ID:             uuid.New().String(),
		ProviderID:     providerID,
		Name:           details.String("name"),
		Description:    details.String("description"),
		Category:       form.String("category"),
		PricingModel:   form.String("pricingModel"),
		CollectPayment: form.Bool("collectPayment"),
		CreatedAt:      time.Now(),
	}
	if d, ok := details.Int("duration"); ok {
		svc.Duration = d
	}
	if p, ok := form.Float("price"); ok {
		svc.Price = p
	}
	return svc, nil
}

// resolveLink prefers the link generated during the booking-link step and
// mints one on the spot when the step was skipped or the shape is off.
func (c *Completer) resolveLink(form wizard.FormData, providerName string) models.BookingLink {
	var link models.BookingLink
	if err := form.Decode("bookingLink", &link); err == nil && link.ID != "" {
		return link
	}
	return BuildBookingLink(providerName)
}

func (c *Completer) sendWelcome(ctx context.Context, provider models.Provider) {
	payload := models.NotificationPayload{
		ProviderID: provider.ID,
		Title:      "Welcome aboard!",
		Message:    fmt.Sprintf("Your booking page is live, %s. Share your link to take your first booking.", provider.Name),
		Kind:       "success",
	}
	if c.AsynqClient != nil {
		if task, opts, err := tasks.NewWelcomeTask(payload); err == nil {
			if _, err := c.AsynqClient.Enqueue(task, opts...); err == nil {
				return
			}
			c.Logger.Warn("failed to enqueue welcome task", zap.Error(err))
		}
	}
	c.Notifier.Notify(ctx, payload)
}
