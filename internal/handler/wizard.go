package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/model"
	"github.com/kaitozaw/tennislot/internal/queue"
	"github.com/kaitozaw/tennislot/internal/repository"
	queue_publisher "github.com/kaitozaw/tennislot/internal/service"
	"github.com/kaitozaw/tennislot/internal/wizard"
)

// WizardHandler drives the booking page setup wizard over HTTP. Create
// mode works on a session draft in Redis addressed by a wizard session
// id; edit mode works directly on the persisted page. The storage
// backend is chosen here, once per request, and everything downstream
// is mode-agnostic.
type WizardHandler struct {
	Wizard *wizard.Controller
	Drafts *repository.DraftRepo
	Pages  *repository.BookingPageRepo
	Rules  *repository.OpeningHourRuleRepo
}

func NewWizardHandler(w *wizard.Controller, d *repository.DraftRepo, p *repository.BookingPageRepo, r *repository.OpeningHourRuleRepo) *WizardHandler {
	if w == nil || d == nil || p == nil || r == nil {
		panic("nil dependency passed to NewWizardHandler")
	}
	return &WizardHandler{Wizard: w, Drafts: d, Pages: p, Rules: r}
}

// pageView is the JSON shape of a booking page in organiser responses.
type pageView struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	PublicURL string    `json:"public_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toPageView(p *model.BookingPage) pageView {
	return pageView{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		PublicURL: p.PublicURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

// LaunchCreate starts a create-mode wizard run: a fresh session id and
// an empty draft, answered with the first step's view.
// POST /v1/booking-pages/wizard
func (h *WizardHandler) LaunchCreate(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()

	session := uuid.NewString()
	draft := h.Wizard.BeginCreate()
	if err := h.Drafts.Save(ctx, oid, session, draft); err != nil {
		return respondError(c, err)
	}

	view, err := h.Wizard.RenderStep(ctx, h.Wizard.DraftSource(draft), wizard.StepBookingPage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"session": session, "view": view})
}

// LaunchEdit opens the wizard against a persisted page the organiser
// owns, answering with the first step's view prefilled from the
// database.
// GET /v1/booking-pages/:id/wizard
func (h *WizardHandler) LaunchEdit(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pageID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	page, err := h.Pages.GetByIDAndOrganiser(ctx, pageID, oid)
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.Wizard.RenderStep(ctx, h.Wizard.EditSource(page.ID), wizard.StepBookingPage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": toPageView(page), "view": view})
}

// Navigate commits the submitted fields of the current step, then
// moves one step in the requested direction and returns that step's
// view. When the forward move lands on the terminal save step the
// wizard finalizes instead: the draft becomes a persisted, inactive
// page in one transaction and the session draft is discarded.
// Validation failure leaves the draft untouched and returns the
// per-field errors.
// POST /v1/booking-pages/wizard/navigate?session=S&current=X&direction=D
func (h *WizardHandler) Navigate(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	session := c.QueryParam("session")
	if session == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session required"})
	}
	current, err := wizard.ParseStep(c.QueryParam("current"))
	if err != nil {
		return respondError(c, err)
	}
	direction := c.QueryParam("direction")
	ctx := c.Request().Context()

	draft, err := h.Drafts.Load(ctx, oid, session)
	if err != nil {
		return respondError(c, err)
	}
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}

	src := h.Wizard.DraftSource(draft)
	if err := h.Wizard.CommitStep(ctx, src, current, form); err != nil {
		return respondError(c, err)
	}

	target, err := wizard.NextStep(current, direction)
	if err != nil {
		return respondError(c, err)
	}
	// Landing on the terminal step going forward means the organiser
	// pressed save on the last editable step; commit the whole draft.
	if target == wizard.StepSave && direction == wizard.DirectionNext {
		return h.finalize(c, oid, session, draft)
	}
	if err := h.Drafts.Save(ctx, oid, session, draft); err != nil {
		return respondError(c, err)
	}
	view, err := h.Wizard.RenderStep(ctx, src, target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"session": session, "view": view})
}

func (h *WizardHandler) finalize(c echo.Context, oid uint64, session string, draft *model.Draft) error {
	ctx := c.Request().Context()
	page, err := h.Wizard.Finalize(ctx, oid, draft)
	if err != nil {
		return respondError(c, err)
	}
	// The draft is spent. A failed delete only means the key lingers
	// until its TTL.
	_ = h.Drafts.Delete(ctx, oid, session)

	ev := queue.BookingPageCreatedEvent{
		BookingPageID: page.ID,
		OrganiserID:   page.OrganiserID,
		Name:          page.Name,
		Location:      page.Location,
		PublicURL:     page.PublicURL,
		CourtCount:    len(draft.Courts),
		CreatedAt:     page.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingPageCreated(pctx, ev)
	}()

	return c.JSON(http.StatusCreated, echo.Map{"page": toPageView(page)})
}

// RenderSection returns the edit-mode view of one section: prefilled
// fields for the scalar sections, the current item list (plus court
// choices where relevant) for the repeatable ones.
// GET /v1/booking-pages/:id/sections/:section
func (h *WizardHandler) RenderSection(c echo.Context) error {
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
	src := h.Wizard.EditSource(pageID)
	name := c.Param("section")

	if step, err := wizard.ParseStep(name); err == nil {
		view, err := h.Wizard.RenderStep(ctx, src, step)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"view": view})
	}

	editor := wizard.NewSectionEditor(src)
	items, choices, err := editor.ListItems(ctx, name)
	if err != nil {
		return respondError(c, err)
	}
	resp := echo.Map{"section": name, "items": items}
	if choices != nil {
		resp["courts"] = choices
	}
	return c.JSON(http.StatusOK, resp)
}

// SaveSection validates and writes the submitted fields of one scalar
// section (booking_page, slot_definition, opening_hour_rules) straight
// to the persisted page. The repeatable sections are mutated through
// the item routes instead.
// POST /v1/booking-pages/:id/sections/:section
func (h *WizardHandler) SaveSection(c echo.Context) error {
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
	step, err := wizard.ParseStep(c.Param("section"))
	if err != nil {
		return respondError(c, err)
	}
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}

	src := h.Wizard.EditSource(pageID)
	if err := h.Wizard.CommitStep(ctx, src, step, form); err != nil {
		return respondError(c, err)
	}
	view, err := h.Wizard.RenderStep(ctx, src, step)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"view": view})
}

// ClearOpeningHour removes the opening hour rule of one weekday. Blank
// rows in a step submission never delete anything, so this is the only
// way to unset a weekday.
// POST /v1/booking-pages/:id/opening-hours/:weekday/delete
func (h *WizardHandler) ClearOpeningHour(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pageID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	weekday, err := pathID(c, "weekday")
	if err != nil || !model.ValidWeekday(int(weekday)) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid weekday"})
	}
	ctx := c.Request().Context()

	if _, err := h.Pages.GetByIDAndOrganiser(ctx, pageID, oid); err != nil {
		return respondError(c, err)
	}
	if err := h.Rules.DeleteByWeekday(ctx, pageID, int(weekday)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
