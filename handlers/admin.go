package handlers

import (
	"net/http"

	viewingRepo "homeview/database/repository/viewing"
	"homeview/models"
	"homeview/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes read-only admin views over the persisted viewings.
type AdminHandler struct {
	ViewingRepo viewingRepo.ViewingRepository
}

func NewAdminHandler(repo viewingRepo.ViewingRepository) *AdminHandler {
	return &AdminHandler{ViewingRepo: repo}
}

// GetAllViewingsHandler lists persisted viewings, optionally filtered by
// property. Read failures are reported, not masked as an empty list.
func (h *AdminHandler) GetAllViewingsHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		viewings []models.Viewing
		err      error
	)
	if propertyID := c.Query("propertyId"); propertyID != "" {
		viewings, err = h.ViewingRepo.ListByProperty(ctx, propertyID)
	} else {
		viewings, err = h.ViewingRepo.ListAll(ctx)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list viewings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"viewings": viewings})
}
