// File: handlers/services.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// GetService returns one service by ID.
func (h *HandlerBundle) GetService(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListProviderServices returns all services owned by a provider.
func (h *HandlerBundle) ListProviderServices(c *gin.Context) {
	providerID := c.Param("providerID")
	services, err := h.Services.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpdateService applies a partial update to a service record.
func (h *HandlerBundle) UpdateService(c *gin.Context) {
	id := c.Param("id")
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc, err := h.Services.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	getLogger(c).Info("service updated", zap.String("serviceId", id))
	c.JSON(http.StatusOK, svc)
}

// DeleteService removes a service record.
func (h *HandlerBundle) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.Services.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
