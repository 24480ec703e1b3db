// File: services/onboarding/bookinglink.go
package onboarding

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// Link states stored in form data while generation is in flight.
const (
	LinkStatusGenerating = "generating"
	LinkStatusReady      = "ready"
)

// LinkGenerationDelay simulates the provisioning time of a public link. The
// triggering control stays disabled for the duration; there is one in-flight
// generation per session and no cancellation.
const LinkGenerationDelay = 2 * time.Second

// BuildBookingLink mints a booking link for a provider name.
func BuildBookingLink(providerName string) models.BookingLink {
	id := uuid.New().String()
	slug := slugify(providerName)
	if slug == "" {
		slug = "provider"
	}
	slug = slug + "-" + id[:8]
	return models.BookingLink{
		ID:        id,
		Slug:      slug,
		URL:       "https://book.slotsetter.app/" + slug,
		Status:    LinkStatusReady,
		CreatedAt: time.Now(),
	}
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// LinkGenerator resolves delayed booking-link tasks: it builds the link,
// writes it into the owning wizard session, and records it under the
// booking-links collection.
type LinkGenerator struct {
	Sessions *wizard.SessionStore
	KV       *utils.KVStore
	Logger   *zap.Logger
}

// HandleGenerateTask is the asynq handler for TypeBookingLinkGenerate.
func (g *LinkGenerator) HandleGenerateTask(ctx context.Context, task *asynq.Task) error {
	var payload models.BookingLinkTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		g.Logger.Error("invalid booking link payload", zap.Error(err))
		return err
	}

	sess, err := g.Sessions.Get(ctx, payload.SessionID)
	if err != nil {
		// Session cancelled or expired while the task was queued; nothing to do.
		g.Logger.Warn("booking link session gone", zap.String("sessionId", payload.SessionID))
		return nil
	}

	link := BuildBookingLink(payload.ProviderName)
	sess.FormData.Update(wizard.FormData{
		"bookingLink":       link,
		"bookingLinkStatus": LinkStatusReady,
	})
	if err := g.Sessions.Save(ctx, sess); err != nil {
		return err
	}

	if err := g.KV.Put(ctx, utils.KVBookingLinks, link.ID, link); err != nil {
		g.Logger.Warn("failed to record booking link", zap.String("linkId", link.ID), zap.Error(err))
	}
	return nil
}
