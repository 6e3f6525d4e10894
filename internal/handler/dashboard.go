package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/repository"
)

// DashboardHandler serves the organiser's page overview: listing their
// booking pages, toggling visibility and deleting a page outright.
type DashboardHandler struct {
	Pages *repository.BookingPageRepo
}

func NewDashboardHandler(p *repository.BookingPageRepo) *DashboardHandler {
	if p == nil {
		panic("nil repository passed to NewDashboardHandler")
	}
	return &DashboardHandler{Pages: p}
}

// ListPages returns all booking pages owned by the caller.
// GET /v1/booking-pages
func (h *DashboardHandler) ListPages(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pages, err := h.Pages.ListByOrganiser(c.Request().Context(), oid)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]pageView, 0, len(pages))
	for _, p := range pages {
		out = append(out, toPageView(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"pages": out})
}

type setActiveReq struct {
	Active bool `json:"active"`
}

// SetActive flips a page's visibility. Only active pages resolve on
// the public /book/:slug route.
// PATCH /v1/booking-pages/:id/active
func (h *DashboardHandler) SetActive(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pageID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req setActiveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx := c.Request().Context()

	if err := h.Pages.SetActive(ctx, pageID, oid, req.Active); err != nil {
		return respondError(c, err)
	}
	page, err := h.Pages.GetByIDAndOrganiser(ctx, pageID, oid)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"page": toPageView(page)})
}

// DeletePage removes a page and everything under it.
// DELETE /v1/booking-pages/:id
func (h *DashboardHandler) DeletePage(c echo.Context) error {
	oid, ok := organiserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pageID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Pages.DeleteByIDAndOrganiser(c.Request().Context(), pageID, oid); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
