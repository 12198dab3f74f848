package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/service/bookingflow"
	"github.com/zvrva/tourbooking/internal/service/bookings"
	"github.com/zvrva/tourbooking/internal/service/packages"
)

const travelDateLayout = "2006-01-02"

type BookingHandler struct {
	flow     bookingflow.FlowUseCase
	sessions *bookingflow.SessionStore
	packages packages.PackageUseCase
	bookings bookings.BookingUseCase
}

func NewBookingHandler(flow bookingflow.FlowUseCase, sessions *bookingflow.SessionStore, pkgs packages.PackageUseCase, bookingSvc bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{flow: flow, sessions: sessions, packages: pkgs, bookings: bookingSvc}
}

// RegisterSessions mounts the dialog endpoints under /packages.
func (h *BookingHandler) RegisterSessions(router *gin.RouterGroup) {
	router.POST("/:id/booking", h.openDialog)
	router.PUT("/:id/booking/date", h.selectDate)
	router.DELETE("/:id/booking", h.closeDialog)
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.submit)
	router.POST("/pay", h.pay)
	router.GET("/", h.list)
}

type selectDateRequest struct {
	TravelDate string `json:"travel_date"`
}

type submitBookingRequest struct {
	PackageID  string `json:"package_id"`
	TravelDate string `json:"travel_date"`
}

type payBookingRequest struct {
	PackageID  string `json:"package_id"`
	TravelDate string `json:"travel_date"`
	Token      string `json:"token"`
}

type bookingResponse struct {
	ID               string `json:"id"`
	PackageID        string `json:"package_id"`
	TravelDate       string `json:"travel_date"`
	TotalAmountPaisa int64  `json:"total_amount_paisa"`
	Status           string `json:"status"`
	PaymentStatus    string `json:"payment_status,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	PaymentReference string `json:"payment_reference,omitempty"`
	CreatedAt        string `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:               b.ID,
		PackageID:        b.PackageID,
		TravelDate:       b.TravelDate.Format(travelDateLayout),
		TotalAmountPaisa: b.TotalAmountPaisa,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentMethod:    b.PaymentMethod,
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func (h *BookingHandler) openDialog(c *gin.Context) {
	dialog := h.sessions.Open(currentUserID(c), c.Param("id"))
	_, hasDate := dialog.TravelDate()
	c.JSON(http.StatusOK, gin.H{"open": dialog.IsOpen(), "date_selected": hasDate})
}

func (h *BookingHandler) selectDate(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(travelDateLayout, req.TravelDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid travel date"})
		return
	}

	dialog := h.sessions.Open(currentUserID(c), c.Param("id"))
	if err := dialog.SelectDate(date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_submit": dialog.CanSubmit()})
}

func (h *BookingHandler) closeDialog(c *gin.Context) {
	h.sessions.Close(currentUserID(c), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// submit is the pay-later path: one pending booking, total copied from the
// package price at submission time.
func (h *BookingHandler) submit(c *gin.Context) {
	var req submitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		respondError(c, err)
		return
	}

	pkg, err := h.packages.GetByID(c.Request.Context(), req.PackageID)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := currentUserID(c)
	dialog, _ := h.sessions.Get(userID, req.PackageID)
	booking, err := h.flow.Submit(c.Request.Context(), dialog, userID, pkg.ID, travelDate, pkg.PricePaisa)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// pay hands the widget token to the gateway and records a confirmed booking
// once the gateway reports success. A cancelled checkout yields 204.
func (h *BookingHandler) pay(c *gin.Context) {
	var req payBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		respondError(c, err)
		return
	}

	pkg, err := h.packages.GetByID(c.Request.Context(), req.PackageID)
	if err != nil {
		respondError(c, err)
		return
	}

	userID := currentUserID(c)
	dialog, _ := h.sessions.Get(userID, req.PackageID)
	booking, err := h.flow.Pay(c.Request.Context(), dialog, userID, pkg, travelDate, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	if booking == nil {
		// Checkout cancelled by the user: nothing created, nothing to report.
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.bookings.ListForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]bookingResponse, 0, len(list))
	for i := range list {
		out = append(out, toBookingResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func parseTravelDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, domain.ErrNoTravelDate
	}
	date, err := time.Parse(travelDateLayout, raw)
	if err != nil {
		return time.Time{}, domain.ErrNoTravelDate
	}
	return date, nil
}
