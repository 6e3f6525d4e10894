package wizard

// Field validation for wizard steps. Rules mirror the submitted form
// contract: names and locations are capped at 100 characters, notes at
// 200, prices are non-negative with at most 2 decimal places, times are
// "HH:MM" with start strictly before end. Validation never mutates
// anything; on failure the caller receives a per-field error map.

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/model"
)

const (
	maxNameLen = 100
	maxNoteLen = 200
)

// maxPrice matches the persisted DECIMAL(6,2) column: values must stay
// below 10000.
var maxPrice = decimal.New(10000, 0)

// parseClock normalizes a time-of-day string to "HH:MM". It accepts an
// optional seconds component so values read back from the database
// ("09:00:00") round-trip cleanly.
func parseClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

// clockBefore reports whether the normalized "HH:MM" value a is
// strictly earlier than b. Normalized values compare correctly as
// strings.
func clockBefore(a, b string) bool { return a < b }

// parseDate normalizes a calendar date to "YYYY-MM-DD".
func parseDate(s string) (string, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// parsePrice parses a currency amount: non-negative, at most two
// decimal places, below the persisted column's range. The returned
// decimal keeps its 2-decimal fixed-point representation so drafts and
// entities store the same value.
func parsePrice(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsNegative() || d.Exponent() < -2 || !d.LessThan(maxPrice) {
		return decimal.Zero, false
	}
	return d.Round(2), true
}

// validateBookingPageStep checks the name/location pair of the first
// wizard step.
func validateBookingPageStep(v url.Values) (*PageFields, *ValidationError) {
	errs := fieldErrors{}
	name := strings.TrimSpace(v.Get("name"))
	location := strings.TrimSpace(v.Get("location"))
	if name == "" {
		errs.add("name", "required")
	} else if len(name) > maxNameLen {
		errs.add("name", "too long")
	}
	if location == "" {
		errs.add("location", "required")
	} else if len(location) > maxNameLen {
		errs.add("location", "too long")
	}
	if verr := errs.err(); verr != nil {
		return nil, verr
	}
	return &PageFields{Name: name, Location: location}, nil
}

// validateSlotDefinitionStep checks slot size (30 or 60 minutes) and
// price.
func validateSlotDefinitionStep(v url.Values) (*SlotFields, *ValidationError) {
	errs := fieldErrors{}
	size, err := strconv.Atoi(strings.TrimSpace(v.Get("slot_size")))
	if err != nil || !model.ValidSlotSize(size) {
		errs.add("slot_size", "must be 30 or 60")
	}
	price, ok := parsePrice(v.Get("price"))
	if v.Get("price") == "" {
		errs.add("price", "required")
	} else if !ok {
		errs.add("price", "invalid price")
	}
	if verr := errs.err(); verr != nil {
		return nil, verr
	}
	return &SlotFields{SlotSize: size, Price: price}, nil
}

// validateOpeningHoursStep parses the weekday row set. The submission
// carries parallel weekday/start_time/end_time value lists, one entry
// per rendered row. Rows where either time is blank are skipped: they
// mean "no rule for that weekday" and are never written. Complete rows
// must have start strictly before end. Duplicate weekdays are rejected.
func validateOpeningHoursStep(v url.Values) ([]OpeningHourRow, *ValidationError) {
	errs := fieldErrors{}
	weekdays := v["weekday"]
	starts := v["start_time"]
	ends := v["end_time"]

	var rows []OpeningHourRow
	seen := map[int]bool{}
	for i, wd := range weekdays {
		weekday, err := strconv.Atoi(strings.TrimSpace(wd))
		if err != nil || !model.ValidWeekday(weekday) {
			errs.add(fmt.Sprintf("weekday_%d", i), "invalid weekday")
			continue
		}
		if seen[weekday] {
			errs.add(fmt.Sprintf("weekday_%d", weekday), "duplicate weekday")
			continue
		}
		seen[weekday] = true

		var startRaw, endRaw string
		if i < len(starts) {
			startRaw = strings.TrimSpace(starts[i])
		}
		if i < len(ends) {
			endRaw = strings.TrimSpace(ends[i])
		}
		if startRaw == "" || endRaw == "" {
			continue // blank row: no rule for this weekday
		}
		start, okS := parseClock(startRaw)
		end, okE := parseClock(endRaw)
		if !okS {
			errs.add(fmt.Sprintf("start_time_%d", weekday), "invalid time")
		}
		if !okE {
			errs.add(fmt.Sprintf("end_time_%d", weekday), "invalid time")
		}
		if okS && okE && !clockBefore(start, end) {
			errs.add(fmt.Sprintf("start_time_%d", weekday), "start time must be earlier than end time")
		}
		if okS && okE && clockBefore(start, end) {
			rows = append(rows, OpeningHourRow{Weekday: weekday, StartTime: start, EndTime: end})
		}
	}
	if verr := errs.err(); verr != nil {
		return nil, verr
	}
	return rows, nil
}

// validateTimeWindow is shared by the exception sections: a required
// date plus a start<end time pair and an optional note.
func validateTimeWindow(v url.Values, errs fieldErrors) (date, start, end, note string) {
	var ok bool
	if date, ok = parseDate(v.Get("date")); !ok {
		errs.add("date", "invalid date")
	}
	start, okS := parseClock(v.Get("start_time"))
	if !okS {
		errs.add("start_time", "invalid time")
	}
	end, okE := parseClock(v.Get("end_time"))
	if !okE {
		errs.add("end_time", "invalid time")
	}
	if okS && okE && !clockBefore(start, end) {
		errs.add("start_time", "start time must be earlier than end time")
	}
	note = strings.TrimSpace(v.Get("note"))
	if len(note) > maxNoteLen {
		errs.add("note", "too long")
	}
	return date, start, end, note
}
