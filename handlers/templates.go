// File: handlers/templates.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Instaresz90008/demo-app-sub000/models"
	"github.com/Instaresz90008/demo-app-sub000/utils"
)

// ListTemplates returns the service template catalog, optionally narrowed by
// the category query parameter.
func (h *HandlerBundle) ListTemplates(c *gin.Context) {
	filter := models.TemplateFilter{Category: c.Query("category")}
	templates, err := h.Templates.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list templates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetTemplate returns one catalog entry by ID.
func (h *HandlerBundle) GetTemplate(c *gin.Context) {
	id := c.Param("id")
	tpl, err := h.Templates.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "template not found", id)
		return
	}
	c.JSON(http.StatusOK, tpl)
}
