package wizard

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingPageStep(t *testing.T) {
	fields, verr := validateBookingPageStep(url.Values{
		"name":     {"  Riverside Courts  "},
		"location": {"12 Dock Rd"},
	})
	require.Nil(t, verr)
	assert.Equal(t, "Riverside Courts", fields.Name)
	assert.Equal(t, "12 Dock Rd", fields.Location)

	_, verr = validateBookingPageStep(url.Values{})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "location")

	_, verr = validateBookingPageStep(url.Values{
		"name":     {strings.Repeat("x", 101)},
		"location": {"somewhere"},
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.NotContains(t, verr.Fields, "location")
}

func TestValidateSlotDefinitionStep(t *testing.T) {
	slot, verr := validateSlotDefinitionStep(url.Values{
		"slot_size": {"60"},
		"price":     {"25"},
	})
	require.Nil(t, verr)
	assert.Equal(t, 60, slot.SlotSize)
	// Prices normalize to two decimal places.
	assert.Equal(t, "25.00", slot.Price.StringFixed(2))

	_, verr = validateSlotDefinitionStep(url.Values{
		"slot_size": {"45"},
		"price":     {"25.00"},
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "slot_size")

	for _, bad := range []string{"-1", "1.999", "10000", "abc"} {
		_, verr = validateSlotDefinitionStep(url.Values{
			"slot_size": {"30"},
			"price":     {bad},
		})
		require.NotNil(t, verr, "price %q should fail", bad)
		assert.Contains(t, verr.Fields, "price")
	}
}

func TestValidateOpeningHoursStepAcceptsCompleteRows(t *testing.T) {
	rows, verr := validateOpeningHoursStep(url.Values{
		"weekday":    {"0", "1", "2"},
		"start_time": {"09:00", "", "10:30"},
		"end_time":   {"17:00", "", "18:00"},
	})
	require.Nil(t, verr)
	// The blank Tuesday row is skipped, never written.
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Weekday)
	assert.Equal(t, "09:00", rows[0].StartTime)
	assert.Equal(t, "17:00", rows[0].EndTime)
	assert.Equal(t, 2, rows[1].Weekday)
}

func TestValidateOpeningHoursStepRejectsInvertedTimes(t *testing.T) {
	_, verr := validateOpeningHoursStep(url.Values{
		"weekday":    {"0"},
		"start_time": {"17:00"},
		"end_time":   {"09:00"},
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "start_time_0")

	// Equal start and end is just as invalid: start must be strictly
	// earlier.
	_, verr = validateOpeningHoursStep(url.Values{
		"weekday":    {"3"},
		"start_time": {"09:00"},
		"end_time":   {"09:00"},
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "start_time_3")
}

func TestValidateOpeningHoursStepRejectsDuplicateWeekday(t *testing.T) {
	_, verr := validateOpeningHoursStep(url.Values{
		"weekday":    {"1", "1"},
		"start_time": {"09:00", "10:00"},
		"end_time":   {"17:00", "18:00"},
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "weekday_1")
}

func TestParseClockAcceptsSeconds(t *testing.T) {
	// Values read back from TIME columns carry seconds and must
	// round-trip to the short form.
	got, ok := parseClock("09:00:00")
	require.True(t, ok)
	assert.Equal(t, "09:00", got)

	_, ok = parseClock("24:15")
	assert.False(t, ok)

	_, ok = parseClock("morning")
	assert.False(t, ok)
}
