package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booking-backend/internal/booking"
)

// GetAvailableSlots handles the GET /api/available-slots request. The days
// query parameter is clamped by the service; anything unparseable falls
// back to the default horizon.
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			days = n
		}
	}

	availability, err := h.svc.Availability(c.Request.Context(), days)
	if err != nil {
		log.Printf("error fetching available slots: %v", err)
		var bookingErr *booking.Error
		msg := "Failed to fetch available slots"
		if errors.As(err, &bookingErr) {
			msg = bookingErr.Message
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   msg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"availability": availability,
	})
}
