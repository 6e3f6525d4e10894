package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/repository"
	"github.com/kaitozaw/tennislot/internal/wizard"
)

// organiserID reads the authenticated organiser id stored by the JWT
// middleware.
func organiserID(c echo.Context) (uint64, bool) {
	v, ok := c.Get("organiser_id").(uint64)
	return v, ok
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// respondError translates wizard and repository failures into the HTTP
// responses the API promises: validation failures carry the per-field
// map, not-found sentinels become 404, an incomplete draft at finalize
// is a 409 conflict.
func respondError(c echo.Context, err error) error {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation_failed", "fields": verr.Fields})
	case errors.Is(err, wizard.ErrInvalidStep),
		errors.Is(err, wizard.ErrInvalidSection),
		errors.Is(err, wizard.ErrInvalidCourtReference):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, wizard.ErrIncompleteDraft):
		return c.JSON(http.StatusConflict, echo.Map{"error": "incomplete draft"})
	case errors.Is(err, repository.ErrPageNotFound),
		errors.Is(err, repository.ErrCourtNotFound),
		errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrDraftNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
