package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/repository"
)

// PublicHandler serves the unauthenticated player-facing view of a
// booking page. Only active pages resolve; everything internal
// (organiser id, record ids beyond what a booking flow needs) is
// stripped from the response.
type PublicHandler struct {
	Pages     *repository.BookingPageRepo
	Courts    *repository.CourtRepo
	Slots     *repository.SlotDefinitionRepo
	Equipment *repository.EquipmentOptionRepo
	Rules     *repository.OpeningHourRuleRepo
	Holidays  *repository.HolidayExceptionRepo
}

func NewPublicHandler(store *repository.Store) *PublicHandler {
	return &PublicHandler{
		Pages:     store.PageRepo,
		Courts:    store.CourtRepo,
		Slots:     store.SlotRepo,
		Equipment: store.EquipmentRepo,
		Rules:     store.RuleRepo,
		Holidays:  store.HolidayRepo,
	}
}

type publicCourt struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type publicSlot struct {
	SlotSize int             `json:"slot_size"`
	Price    decimal.Decimal `json:"price"`
}

type publicEquipment struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type publicOpeningHour struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type publicHoliday struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`
}

type publicPageView struct {
	Name         string              `json:"name"`
	Location     string              `json:"location"`
	Courts       []publicCourt       `json:"courts"`
	Slot         *publicSlot         `json:"slot_definition,omitempty"`
	Equipment    []publicEquipment   `json:"equipment_options"`
	OpeningHours []publicOpeningHour `json:"opening_hours"`
	Holidays     []publicHoliday     `json:"holiday_exceptions"`
}

// GetPage resolves a public slug to the sanitized page view players
// book from. Inactive or unknown slugs answer 404 alike, so the slug
// space cannot be probed for hidden pages.
// GET /book/:slug
func (h *PublicHandler) GetPage(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.Pages.GetActiveBySlug(ctx, c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}

	view := publicPageView{
		Name:         page.Name,
		Location:     page.Location,
		Courts:       []publicCourt{},
		Equipment:    []publicEquipment{},
		OpeningHours: []publicOpeningHour{},
		Holidays:     []publicHoliday{},
	}

	courts, err := h.Courts.ListByPage(ctx, page.ID)
	if err != nil {
		return respondError(c, err)
	}
	for _, court := range courts {
		view.Courts = append(view.Courts, publicCourt{ID: court.ID, Name: court.Name})
	}

	slot, err := h.Slots.GetByPage(ctx, page.ID)
	if err != nil {
		return respondError(c, err)
	}
	if slot != nil {
		view.Slot = &publicSlot{SlotSize: slot.SlotSize, Price: slot.Price}
	}

	opts, err := h.Equipment.ListByPage(ctx, page.ID)
	if err != nil {
		return respondError(c, err)
	}
	for _, opt := range opts {
		view.Equipment = append(view.Equipment, publicEquipment{ID: opt.ID, Name: opt.Name, Price: opt.Price})
	}

	rules, err := h.Rules.ListByPage(ctx, page.ID)
	if err != nil {
		return respondError(c, err)
	}
	for _, rule := range rules {
		view.OpeningHours = append(view.OpeningHours, publicOpeningHour{
			Weekday: rule.Weekday, StartTime: rule.StartTime, EndTime: rule.EndTime,
		})
	}

	holidays, err := h.Holidays.ListByPage(ctx, page.ID)
	if err != nil {
		return respondError(c, err)
	}
	for _, he := range holidays {
		view.Holidays = append(view.Holidays, publicHoliday{
			Date: he.Date, StartTime: he.StartTime, EndTime: he.EndTime, Note: he.Note,
		})
	}

	return c.JSON(http.StatusOK, view)
}
