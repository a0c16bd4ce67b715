package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booking-backend/internal/booking"
	"booking-backend/internal/schedule"
)

// BookingService is the slice of the booking pipeline the handlers need.
type BookingService interface {
	Availability(ctx context.Context, days int) ([]schedule.DayAvailability, error)
	Submit(ctx context.Context, sub booking.Submission, clientIP string) (booking.Result, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	svc      BookingService
	ipHeader string
}

// NewHandler creates a new API handler. ipHeader names the reverse-proxy
// header carrying the real client address; empty falls back to the
// connection address.
func NewHandler(svc BookingService, ipHeader string) *Handler {
	return &Handler{svc: svc, ipHeader: ipHeader}
}

// GetHealth handles the GET /api/health request.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
