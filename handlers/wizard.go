// File: handlers/wizard.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/onboarding"
	"github.com/Instaresz90008/demo-app-sub000/services/serviceflow"
	"github.com/Instaresz90008/demo-app-sub000/services/tasks"
	"github.com/Instaresz90008/demo-app-sub000/services/wizard"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// StartWizardSession creates a new wizard session for the named flow.
// An optional templateId pre-populates the form from the catalog; explicit
// initial values are layered on top and win.
func (h *HandlerBundle) StartWizardSession(c *gin.Context) {
	logger := getLogger(c)
	flowName := c.Param("flow")
	fl, ok := h.flow(flowName)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown wizard flow", flowName)
		return
	}

	var input struct {
		TemplateID string          `json:"templateId"`
		Initial    wizard.FormData `json:"initial"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	initial := wizard.FormData{}
	if input.TemplateID != "" {
		tpl, err := h.Templates.GetByID(c.Request.Context(), input.TemplateID)
		if err != nil {
			utils.JSONError(c, http.StatusNotFound, "template not found", input.TemplateID)
			return
		}
		initial.Update(templatePrefill(flowName, tpl))
	}
	if input.Initial != nil {
		initial.Update(input.Initial)
	}

	w := wizard.New(fl, initial)
	sess := wizard.NewSession(w)
	if err := h.Store.Save(c.Request.Context(), sess); err != nil {
		logger.Error("failed to save wizard session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start wizard session", err.Error())
		return
	}

	c.JSON(http.StatusCreated, h.stateResponse(sess, w))
}

// GetWizardSession returns the live state of a wizard session.
func (h *HandlerBundle) GetWizardSession(c *gin.Context) {
	sess, w, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(sess, w))
}

// UpdateWizardSession merges a partial form edit into the session. Top-level
// keys overwrite; registered nested sections merge key-wise.
func (h *HandlerBundle) UpdateWizardSession(c *gin.Context) {
	sess, w, ok := h.loadSession(c)
	if !ok {
		return
	}
	var partial wizard.FormData
	if err := c.ShouldBindJSON(&partial); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	w.Update(partial)
	if !h.persist(c, sess, w) {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(sess, w))
}

// AdvanceWizardSession validates the current step and moves forward. On
// validation failure the field errors come back with 422 and nothing moves.
func (h *HandlerBundle) AdvanceWizardSession(c *gin.Context) {
	sess, w, ok := h.loadSession(c)
	if !ok {
		return
	}
	if errs := w.Next(); errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors":      errs,
			"currentStep": w.CurrentStep,
		})
		return
	}
	h.maybeStartLinkGeneration(c, sess, w)
	if !h.persist(c, sess, w) {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(sess, w))
}

// maybeStartLinkGeneration kicks off booking link generation the first time
// the onboarding wizard lands on the booking-link step. The link arrives via
// the background worker a couple of seconds later.
func (h *HandlerBundle) maybeStartLinkGeneration(c *gin.Context, sess *wizard.Session, w *wizard.Wizard) {
	if h.TaskClient == nil || sess.Flow != onboarding.FlowName || w.CurrentStep != onboarding.StepBookingLink {
		return
	}
	if w.Form["bookingLink"] != nil || w.Form.String("bookingLinkStatus") != "" {
		return
	}
	payload := models.BookingLinkTaskPayload{
		SessionID:    sess.SessionID,
		ProviderName: w.Form.String("providerName"),
	}
	task, opts, err := tasks.NewBookingLinkTask(payload, onboarding.LinkGenerationDelay)
	if err == nil {
		_, err = h.TaskClient.Enqueue(task, opts...)
	}
	if err != nil {
		getLogger(c).Warn("failed to enqueue booking link generation",
			zap.String("sessionId", sess.SessionID), zap.Error(err))
		return
	}
	w.Update(wizard.FormData{"bookingLinkStatus": onboarding.LinkStatusGenerating})
}

// RewindWizardSession steps back one step. Always succeeds; form data and
// completion history are untouched.
func (h *HandlerBundle) RewindWizardSession(c *gin.Context) {
	sess, w, ok := h.loadSession(c)
	if !ok {
		return
	}
	w.Previous()
	if !h.persist(c, sess, w) {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(sess, w))
}

// JumpWizardSession jumps to an earlier or already-completed step.
func (h *HandlerBundle) JumpWizardSession(c *gin.Context) {
	sess, w, ok := h.loadSession(c)
	if !ok {
		return
	}
	var input struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !w.GoTo(input.Step) {
		utils.JSONError(c, http.StatusForbidden, "step is not reachable yet", fmt.Sprintf("step %d", input.Step))
		return
	}
	if !h.persist(c, sess, w) {
		return
	}
	c.JSON(http.StatusOK, h.stateResponse(sess, w))
}

// ValidateWizardField runs the cheap per-field check without touching state.
func (h *HandlerBundle) ValidateWizardField(c *gin.Context) {
	_, w, ok := h.loadSession(c)
	if !ok {
		return
	}
	var input struct {
		Field string `json:"field"`
		Value any    `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	msg := w.ValidateField(input.Field, input.Value)
	c.JSON(http.StatusOK, gin.H{"field": input.Field, "error": msg, "valid": msg == ""})
}

// SubmitWizardSession re-validates every step and runs the flow's completion
// handler. On completion failure the session is preserved so the user can fix
// the problem and retry.
func (h *HandlerBundle) SubmitWizardSession(c *gin.Context) {
	logger := getLogger(c)
	sess, w, ok := h.loadSession(c)
	if !ok {
		return
	}

	for i, step := range w.Flow().Steps {
		if step.Validate == nil {
			continue
		}
		if errs := step.Validate(w.Form); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"step":     i + 1,
				"stepName": step.Name,
				"errors":   errs,
			})
			return
		}
	}

	result, err := w.Flow().Complete(c.Request.Context(), w.Form)
	if err != nil {
		logger.Error("wizard completion failed",
			zap.String("sessionId", sess.SessionID),
			zap.String("flow", sess.Flow),
			zap.Error(err))
		h.Notifier.Notify(c.Request.Context(), models.NotificationPayload{
			ProviderID: w.Form.String("providerId"),
			Title:      "Something went wrong",
			Message:    "We could not finish setting things up. Your progress is saved, please try again.",
			Kind:       "error",
		})
		utils.JSONError(c, http.StatusInternalServerError, "completion failed", err.Error())
		return
	}

	if err := h.Store.Delete(c.Request.Context(), sess.SessionID); err != nil {
		logger.Warn("failed to discard completed wizard session",
			zap.String("sessionId", sess.SessionID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// CancelWizardSession discards the session and everything typed into it.
func (h *HandlerBundle) CancelWizardSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Store.Delete(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel wizard session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": sessionID})
}

func (h *HandlerBundle) loadSession(c *gin.Context) (*wizard.Session, *wizard.Wizard, bool) {
	sessionID := c.Param("sessionID")
	sess, err := h.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "wizard session not found or expired", sessionID)
		return nil, nil, false
	}
	fl, ok := h.flow(sess.Flow)
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, "session references unknown flow", sess.Flow)
		return nil, nil, false
	}
	return sess, sess.Hydrate(fl), true
}

func (h *HandlerBundle) persist(c *gin.Context, sess *wizard.Session, w *wizard.Wizard) bool {
	sess.Capture(w)
	if err := h.Store.Save(c.Request.Context(), sess); err != nil {
		getLogger(c).Error("failed to save wizard session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save wizard session", err.Error())
		return false
	}
	return true
}

func (h *HandlerBundle) stateResponse(sess *wizard.Session, w *wizard.Wizard) gin.H {
	resp := gin.H{
		"sessionId":      sess.SessionID,
		"flow":           sess.Flow,
		"currentStep":    w.CurrentStep,
		"stepName":       w.Flow().Steps[w.CurrentStep-1].Name,
		"totalSteps":     w.Flow().StepCount(),
		"progress":       w.Progress(),
		"completedSteps": sess.CompletedSteps,
		"formData":       w.Form,
	}
	// Pricing nudges are advisory: surfaced with the state, never blocking.
	if sess.Flow == onboarding.FlowName {
		if warnings := onboarding.PricingWarnings(w.Form); len(warnings) > 0 {
			resp["warnings"] = warnings
		}
	}
	// The last step of both flows is a review screen.
	if w.CurrentStep == w.Flow().StepCount() {
		switch sess.Flow {
		case onboarding.FlowName:
			resp["summary"] = onboarding.ReviewSummary(w.Form)
		case serviceflow.FlowName:
			resp["summary"] = serviceflow.ReviewSummary(w.Form)
		}
	}
	return resp
}

// templatePrefill maps catalog defaults onto the flow's form keys. The two
// flows keep service fields in different places.
func templatePrefill(flowName string, tpl *models.Template) wizard.FormData {
	switch flowName {
	case onboarding.FlowName:
		return wizard.FormData{
			"category": tpl.Category,
			"price":    tpl.DefaultPrice,
			"serviceDetails": map[string]any{
				"name":        tpl.Name,
				"description": tpl.Description,
				"duration":    tpl.DefaultDuration,
				"capacity":    tpl.DefaultCapacity,
			},
		}
	default:
		return wizard.FormData{
			"serviceName": tpl.Name,
			"description": tpl.Description,
			"duration":    tpl.DefaultDuration,
			"price":       tpl.DefaultPrice,
			"category":    tpl.Category,
		}
	}
}
