package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/service/bookings"
)

type AdminHandler struct {
	service bookings.BookingUseCase
}

func NewAdminHandler(service bookings.BookingUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/bookings", h.listBookings)
	router.PUT("/bookings/:id/status", h.updateStatus)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type bookingDetailsResponse struct {
	bookingResponse
	PackageTitle    string `json:"package_title"`
	PackageLocation string `json:"package_location"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
}

func (h *AdminHandler) listBookings(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]bookingDetailsResponse, 0, len(list))
	for i := range list {
		d := &list[i]
		out = append(out, bookingDetailsResponse{
			bookingResponse: toBookingResponse(&d.Booking),
			PackageTitle:    d.PackageTitle,
			PackageLocation: d.PackageLocation,
			CustomerName:    d.CustomerName,
			CustomerEmail:   d.CustomerEmail,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         updated.ID,
		"status":     string(updated.Status),
		"updated_at": updated.UpdatedAt.Format(time.RFC3339),
	})
}
