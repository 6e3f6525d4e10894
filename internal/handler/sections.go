package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/repository"
	"github.com/kaitozaw/tennislot/internal/wizard"
)

// SectionHandler exposes the uniform add/delete item operations over
// the four repeatable sections. The create-mode routes mutate the
// session draft (items addressed by list index); the edit-mode routes
// mutate persisted records (addressed by object id). Both funnel into
// the same section editor.
type SectionHandler struct {
	Wizard *wizard.Controller
	Drafts *repository.DraftRepo
	Pages  *repository.BookingPageRepo
}

func NewSectionHandler(w *wizard.Controller, d *repository.DraftRepo, p *repository.BookingPageRepo) *SectionHandler {
	if w == nil || d == nil || p == nil {
		panic("nil dependency passed to NewSectionHandler")
	}
	return &SectionHandler{Wizard: w, Drafts: d, Pages: p}
}

func itemsResponse(c echo.Context, section string, items []wizard.Item) error {
	if items == nil {
		items = []wizard.Item{}
	}
	return c.JSON(http.StatusOK, echo.Map{"section": section, "items": items})
}

// AddItemCreate appends an item to a draft section.
// POST /v1/booking-pages/wizard/items/:section?session=S
func (h *SectionHandler) AddItemCreate(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	session := c.QueryParam("session")
	if session == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session required"})
	}
	ctx := c.Request().Context()

	draft, err := h.Drafts.Load(ctx, oid, session)
	if err != nil {
		return respondError(c, err)
	}
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}

	editor := wizard.NewSectionEditor(h.Wizard.DraftSource(draft))
	items, err := editor.AddItem(ctx, c.Param("section"), form)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Drafts.Save(ctx, oid, session, draft); err != nil {
		return respondError(c, err)
	}
	return itemsResponse(c, c.Param("section"), items)
}

// DeleteItemCreate removes a draft section item by list position.
// Out-of-range positions are a no-op returning the unchanged list.
// POST /v1/booking-pages/wizard/items/:section/:index/delete?session=S
func (h *SectionHandler) DeleteItemCreate(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	session := c.QueryParam("session")
	if session == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session required"})
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid index"})
	}
	ctx := c.Request().Context()

	draft, err := h.Drafts.Load(ctx, oid, session)
	if err != nil {
		return respondError(c, err)
	}

	editor := wizard.NewSectionEditor(h.Wizard.DraftSource(draft))
	items, err := editor.DeleteItem(ctx, c.Param("section"), wizard.ItemRef{Index: index})
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Drafts.Save(ctx, oid, session, draft); err != nil {
		return respondError(c, err)
	}
	return itemsResponse(c, c.Param("section"), items)
}

// ownedPageID resolves the :id parameter to a page the caller owns.
func (h *SectionHandler) ownedPageID(c echo.Context) (uint64, error) {
	oid, ok := organiserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	pageID, err := pathID(c, "id")
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if _, err := h.Pages.GetByIDAndOrganiser(c.Request().Context(), pageID, oid); err != nil {
		return 0, err
	}
	return pageID, nil
}

// AddItemEdit creates a persisted record in a section of an owned page.
// POST /v1/booking-pages/:id/items/:section
func (h *SectionHandler) AddItemEdit(c echo.Context) error {
	pageID, err := h.ownedPageID(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return respondError(c, err)
	}
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}

	editor := wizard.NewSectionEditor(h.Wizard.EditSource(pageID))
	items, err := editor.AddItem(c.Request().Context(), c.Param("section"), form)
	if err != nil {
		return respondError(c, err)
	}
	return itemsResponse(c, c.Param("section"), items)
}

// DeleteItemEdit removes a persisted section record by object id,
// scoped to the owned page. Ids under foreign pages answer 404.
// POST /v1/booking-pages/:id/items/:section/:object_id/delete
func (h *SectionHandler) DeleteItemEdit(c echo.Context) error {
	pageID, err := h.ownedPageID(c)
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return respondError(c, err)
	}
	objectID, err := pathID(c, "object_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid object id"})
	}

	editor := wizard.NewSectionEditor(h.Wizard.EditSource(pageID))
	items, err := editor.DeleteItem(c.Request().Context(), c.Param("section"), wizard.ItemRef{ObjectID: objectID})
	if err != nil {
		return respondError(c, err)
	}
	return itemsResponse(c, c.Param("section"), items)
}
