// File: handlers/bundle.go
package handlers

import (
	"github.com/hibiken/asynq"

	serviceRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/service"
	templateRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/template"
	timeslotRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/timeslot"
	"github.com/Instaresz90008/demo-app-sub000/services/notification"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
)

// HandlerBundle groups the endpoint handlers' shared dependencies. Flows maps
// flow names to their static definitions; sessions rebind to them on load.
type HandlerBundle struct {
	Store     *wizard.SessionStore
	Flows     map[string]*wizard.Flow
	Services  serviceRepoPkg.ServiceRepository
	Templates templateRepoPkg.TemplateRepository
	Timeslots timeslotRepoPkg.TimeSlotRepository
	Notifier  notification.Notifier

	// TaskClient enqueues background work (booking link generation, welcome
	// sends). Nil disables background dispatch.
	TaskClient *asynq.Client
}

func (h *HandlerBundle) flow(name string) (*wizard.Flow, bool) {
	fl, ok := h.Flows[name]
	return fl, ok
}
