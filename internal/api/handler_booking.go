package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-backend/internal/booking"
	"booking-backend/internal/mw"
)

// bookingRequest is the inbound booking payload. The website field is the
// honeypot: hidden in the form, expected empty from real users.
type bookingRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Service           string `json:"service"`
	Message           string `json:"message"`
	ScheduledDatetime string `json:"scheduledDatetime"`
	TurnstileToken    string `json:"turnstileToken"`
	Website           string `json:"website"`
}

// statusFor maps the booking error taxonomy onto HTTP status codes.
func statusFor(code booking.ErrorCode) int {
	switch code {
	case booking.CodeSlotConflict:
		return http.StatusConflict
	case booking.CodeUpstream:
		return http.StatusInternalServerError
	default: // validation, spam, captcha
		return http.StatusBadRequest
	}
}

// PostBooking handles the POST /api/booking request.
func (h *Handler) PostBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	sub := booking.Submission{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Service:           req.Service,
		Message:           req.Message,
		ScheduledDatetime: req.ScheduledDatetime,
		TurnstileToken:    req.TurnstileToken,
		Honeypot:          req.Website,
	}

	result, err := h.svc.Submit(c.Request.Context(), sub, mw.ClientIP(c, h.ipHeader))
	if err != nil {
		var bookingErr *booking.Error
		if errors.As(err, &bookingErr) {
			c.AbortWithStatusJSON(statusFor(bookingErr.Code), gin.H{
				"success": false,
				"error":   bookingErr.Message,
			})
			return
		}
		log.Printf("booking error: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process booking. Please try again.",
		})
		return
	}

	resp := gin.H{
		"success":   true,
		"scheduled": result.Scheduled,
		"message":   result.Message,
	}
	if result.CalendarEventID != "" {
		resp["calendarEventId"] = result.CalendarEventID
	}
	c.JSON(http.StatusOK, resp)
}
