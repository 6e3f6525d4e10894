package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/handler"
	"github.com/kaitozaw/tennislot/internal/middleware"
)

// RegisterOrganiser registers the organiser-scoped endpoints under
// /v1. All routes require a valid JWT with the ORGANISER role.
// Mutations are POST/PATCH/DELETE; anything else 405s at the router.
func RegisterOrganiser(e *echo.Echo, w *handler.WizardHandler, s *handler.SectionHandler, d *handler.DashboardHandler, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleOrganiser),
	)

	// ---- Wizard, create mode (session draft) ----
	g.POST("/booking-pages/wizard", w.LaunchCreate)
	g.POST("/booking-pages/wizard/navigate", w.Navigate)
	g.POST("/booking-pages/wizard/items/:section", s.AddItemCreate)
	g.POST("/booking-pages/wizard/items/:section/:index/delete", s.DeleteItemCreate)

	// ---- Wizard, edit mode (persisted page) ----
	g.GET("/booking-pages/:id/wizard", w.LaunchEdit)
	g.GET("/booking-pages/:id/sections/:section", w.RenderSection)
	g.POST("/booking-pages/:id/sections/:section", w.SaveSection)
	g.POST("/booking-pages/:id/items/:section", s.AddItemEdit)
	g.POST("/booking-pages/:id/items/:section/:object_id/delete", s.DeleteItemEdit)
	g.POST("/booking-pages/:id/opening-hours/:weekday/delete", w.ClearOpeningHour)

	// ---- Dashboard ----
	g.GET("/booking-pages", d.ListPages)
	g.PATCH("/booking-pages/:id/active", d.SetActive)
	g.DELETE("/booking-pages/:id", d.DeletePage)

	// ---- Bookings ----
	g.GET("/booking-pages/:id/bookings", b.ListByPage)
	g.PATCH("/bookings/:id/payment", b.UpdatePayment)
}
