package handlers

import (
	"errors"
	"net/http"

	"homeview/models"
	"homeview/services/scheduling"
	"homeview/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewingHandler exposes the booking wizard over HTTP. Each endpoint maps to
// one wizard operation; all state lives server-side in the session store.
type ViewingHandler struct {
	Service scheduling.WizardService
	Logger  *zap.Logger
}

func NewViewingHandler(svc scheduling.WizardService, logger *zap.Logger) *ViewingHandler {
	return &ViewingHandler{Service: svc, Logger: logger}
}

// respondServiceError maps service errors onto HTTP statuses: validation
// failures are 422 (the user can correct and resubmit), state violations 409,
// missing sessions 404, anything else 500.
func (h *ViewingHandler) respondServiceError(c *gin.Context, err error) {
	var vErr *scheduling.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
		return
	}
	var stErr *scheduling.StateError
	if errors.As(err, &stErr) {
		c.JSON(http.StatusConflict, gin.H{"error": stErr.Message})
		return
	}
	var sErr *scheduling.SessionError
	if errors.As(err, &sErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": sErr.Message})
		return
	}
	h.Logger.Error("viewing wizard failure", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "something went wrong", err.Error())
}

// StartSession opens a new wizard for the supplied property.
func (h *ViewingHandler) StartSession(c *gin.Context) {
	var input struct {
		Property models.Property `json:"property" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, calendar, err := h.Service.Start(c.Request.Context(), input.Property)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "calendar": calendar})
}

// GetSession returns the wizard state plus the grid for its displayed month.
func (h *ViewingHandler) GetSession(c *gin.Context) {
	session, calendar, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "calendar": calendar})
}

// NavigateMonth moves the displayed month within the booking window.
func (h *ViewingHandler) NavigateMonth(c *gin.Context) {
	var input struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, calendar, err := h.Service.Navigate(c.Request.Context(), c.Param("sessionID"), input.Direction)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "calendar": calendar})
}

// SelectDate records an eligible viewing date.
func (h *ViewingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, calendar, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "calendar": calendar})
}

// SelectTime records one of the fixed hourly slots.
func (h *ViewingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance moves the wizard one step forward.
func (h *ViewingHandler) Advance(c *gin.Context) {
	session, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Back moves the wizard one step backward, keeping selections.
func (h *ViewingHandler) Back(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Confirm submits the contact form and books the viewing.
func (h *ViewingHandler) Confirm(c *gin.Context) {
	var input models.ContactDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmation": confirmation})
}

// CancelSession dismisses the wizard; nothing is persisted.
func (h *ViewingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetTimeSlots returns the fixed enumeration of bookable hourly slots.
func (h *ViewingHandler) GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": models.TimeSlots})
}
