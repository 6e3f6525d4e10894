package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/model"
	"github.com/kaitozaw/tennislot/internal/repository"
)

// BookingHandler surfaces player bookings to organisers. Bookings are
// written by the availability service; here they are only listed and
// their payment status maintained.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Pages    *repository.BookingPageRepo
}

func NewBookingHandler(b *repository.BookingRepo, p *repository.BookingPageRepo) *BookingHandler {
	if b == nil || p == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Pages: p}
}

type equipmentLineView struct {
	EquipmentOptionID uint64 `json:"equipment_option_id"`
	Name              string `json:"name"`
	Quantity          uint32 `json:"quantity"`
}

type bookingView struct {
	ID            uint64              `json:"id"`
	CourtID       uint64              `json:"court_id"`
	CourtName     string              `json:"court_name"`
	Date          string              `json:"date"`
	StartTime     string              `json:"start_time"`
	EndTime       string              `json:"end_time"`
	PlayerEmail   string              `json:"player_email"`
	PlayerPhone   string              `json:"player_phone"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	Equipment     []equipmentLineView `json:"equipment"`
}

func toBookingView(b *model.Booking) bookingView {
	view := bookingView{
		ID:            b.ID,
		CourtID:       b.CourtID,
		CourtName:     b.CourtName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		PlayerEmail:   b.PlayerEmail,
		PlayerPhone:   b.PlayerPhone,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		Equipment:     []equipmentLineView{},
	}
	for _, line := range b.Equipment {
		view.Equipment = append(view.Equipment, equipmentLineView{
			EquipmentOptionID: line.EquipmentOptionID,
			Name:              line.EquipmentName,
			Quantity:          line.Quantity,
		})
	}
	return view
}

// ListByPage returns all bookings across the courts of an owned page,
// equipment line items included.
// GET /v1/booking-pages/:id/bookings
func (h *BookingHandler) ListByPage(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pageID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	if _, err := h.Pages.GetByIDAndOrganiser(ctx, pageID, oid); err != nil {
		return respondError(c, err)
	}
	bookings, err := h.Bookings.ListByPage(ctx, pageID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingView(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}

type paymentReq struct {
	Status string `json:"status"`
}

// UpdatePayment moves a booking between unpaid, paid and refunded.
// Bookings under pages the caller does not own answer 404.
// PATCH /v1/bookings/:id/payment
func (h *BookingHandler) UpdatePayment(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !model.ValidPaymentStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment status"})
	}

	if err := h.Bookings.UpdatePaymentStatusForOrganiser(c.Request().Context(), bookingID, oid, status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": bookingID, "payment_status": status})
}
