// File: handlers/timeslots.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/services/onboarding"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// PreviewSlots expands an availability rule into concrete timeslots without
// persisting anything. The onboarding wizard calls this for its preview step.
func (h *HandlerBundle) PreviewSlots(c *gin.Context) {
	var rule models.AvailabilityRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	slots, err := onboarding.GenerateSlots(rule, time.Now())
	if err != nil {
		if errors.Is(err, onboarding.ErrNoDaysSelected) || errors.Is(err, onboarding.ErrNoSlotsGenerated) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "no slots could be generated", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// CreateProviderTimeslot saves a manually entered slot. The only rule applied
// at save time is that the slot's start precedes its end.
func (h *HandlerBundle) CreateProviderTimeslot(c *gin.Context) {
	providerID := c.Param("providerID")
	var slot models.TimeSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := onboarding.ValidateManualSlot(slot); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid timeslot", err.Error())
		return
	}
	slot.ProviderID = providerID
	ids, err := h.Timeslots.CreateMany(c.Request.Context(), []models.TimeSlot{slot})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create timeslot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": ids[0]})
}

// ListProviderTimeslots returns a provider's timeslots, optionally for one date.
func (h *HandlerBundle) ListProviderTimeslots(c *gin.Context) {
	providerID := c.Param("providerID")
	var (
		slots []models.TimeSlot
		err   error
	)
	if date := c.Query("date"); date != "" {
		slots, err = h.Timeslots.GetByProviderIDAndDate(c.Request.Context(), providerID, date)
	} else {
		slots, err = h.Timeslots.GetByProviderID(c.Request.Context(), providerID)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list timeslots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// DeleteProviderTimeslot removes a single timeslot owned by the provider.
func (h *HandlerBundle) DeleteProviderTimeslot(c *gin.Context) {
	providerID := c.Param("providerID")
	slotID := c.Param("slotID")
	if err := h.Timeslots.DeleteByID(c.Request.Context(), providerID, slotID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "timeslot not found", slotID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": slotID})
}
