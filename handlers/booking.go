package handlers

import (
	"errors"
	"net/http"

	bookingRepo "glamora/database/repository/booking"
	"glamora/models"
	"glamora/services/booking"
	"glamora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the customer booking flow: session lifecycle, cart
// and selection mutations, confirmation and receipts.
type BookingHandler struct {
	Sessions booking.SessionService
	Workflow booking.PaymentWorkflow
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(sessions booking.SessionService, workflow booking.PaymentWorkflow, bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Sessions: sessions,
		Workflow: workflow,
		Bookings: bookings,
		Logger:   logger,
	}
}

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Sessions.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("StartSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": session.SessionID, "session": session})
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	summary, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddService handles POST /api/booking/session/:sessionID/services.
func (h *BookingHandler) AddService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	summary, err := h.Sessions.AddService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RemoveService handles DELETE /api/booking/session/:sessionID/services/:serviceID.
func (h *BookingHandler) RemoveService(c *gin.Context) {
	summary, err := h.Sessions.RemoveService(c.Request.Context(), c.Param("sessionID"), c.Param("serviceID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateQuantity handles PUT /api/booking/session/:sessionID/services/:serviceID.
func (h *BookingHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	summary, err := h.Sessions.UpdateQuantity(c.Request.Context(), c.Param("sessionID"), c.Param("serviceID"), input.Quantity)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SetStylist handles PUT /api/booking/session/:sessionID/stylist. An empty
// stylistID means "any available stylist".
func (h *BookingHandler) SetStylist(c *gin.Context) {
	var input struct {
		StylistID string `json:"stylistID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	summary, err := h.Sessions.SetStylist(c.Request.Context(), c.Param("sessionID"), input.StylistID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SetSchedule handles PUT /api/booking/session/:sessionID/schedule. Date and
// time are set independently; either may be omitted.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	ctx := c.Request.Context()
	var summary *booking.SessionSummary
	var err error
	if input.Date != "" {
		if summary, err = h.Sessions.SetDate(ctx, sessionID, input.Date); err != nil {
			h.respondSessionError(c, err)
			return
		}
	}
	if input.Time != "" {
		if summary, err = h.Sessions.SetTime(ctx, sessionID, input.Time); err != nil {
			h.respondSessionError(c, err)
			return
		}
	}
	if summary == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide a date or a time"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SetCustomerInfo handles PUT /api/booking/session/:sessionID/customer.
func (h *BookingHandler) SetCustomerInfo(c *gin.Context) {
	var input models.CustomerInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	summary, err := h.Sessions.SetCustomerInfo(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SetPaymentMethod handles PUT /api/booking/session/:sessionID/payment-method.
func (h *BookingHandler) SetPaymentMethod(c *gin.Context) {
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	summary, err := h.Sessions.SetPaymentMethod(c.Request.Context(), c.Param("sessionID"), input.Method)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Confirm handles POST /api/booking/session/:sessionID/confirm. The choice
// selects one of the two payment paths; "now" charges M-Pesa before the
// booking is written, "later" defers payment to the salon visit.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		Choice string `json:"choice" binding:"required"`
		Phone  string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sessionID := c.Param("sessionID")
	var booked *models.Booking
	var err error
	switch input.Choice {
	case "now":
		booked, err = h.Workflow.PayNow(ctx, sessionID, input.Phone)
	case "later":
		booked, err = h.Workflow.PayLater(ctx, sessionID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "choice must be \"now\" or \"later\""})
		return
	}
	if err != nil {
		h.respondConfirmError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingID": booked.ID, "booking": booked})
}

// Clear handles DELETE /api/booking/session/:sessionID, invoked when the
// customer leaves the confirmation page.
func (h *BookingHandler) Clear(c *gin.Context) {
	if err := h.Sessions.Clear(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// Receipt handles GET /api/bookings/:id/receipt and returns the plain-text
// receipt for a submitted booking.
func (h *BookingHandler) Receipt(c *gin.Context) {
	booked, err := h.Bookings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.String(http.StatusOK, booking.BuildReceipt(booked))
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	h.Logger.Warn("booking session operation failed", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *BookingHandler) respondConfirmError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var pErr *booking.PaymentError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "missingFields": vErr.MissingFields})
	case errors.As(err, &pErr):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": pErr.Message})
	case errors.Is(err, booking.ErrNoServices):
		c.JSON(http.StatusBadRequest, gin.H{"error": booking.ErrNoServices.Error()})
	default:
		h.Logger.Error("booking confirmation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
