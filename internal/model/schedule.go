package model

import "time"

// Weekday values follow the original numbering with Monday as 0.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayNames maps weekday values to display names, Monday first.
var WeekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ValidWeekday reports whether n is within the 0..6 weekday range.
func ValidWeekday(n int) bool { return n >= 0 && n <= 6 }

// OpeningHourRule defines the bookable window for one weekday of a
// booking page. At most one rule exists per (page, weekday); the
// start time is strictly before the end time. Times are stored as
// "HH:MM" strings, half-open ranges.
type OpeningHourRule struct {
	ID            uint64    // opening_hour_rules.id
	BookingPageID uint64    // opening_hour_rules.booking_page_id
	Weekday       int       // opening_hour_rules.weekday (0=Monday .. 6=Sunday)
	StartTime     string    // opening_hour_rules.start_time ("HH:MM")
	EndTime       string    // opening_hour_rules.end_time ("HH:MM")
	CreatedAt     time.Time // opening_hour_rules.created_at
}

// HolidayException is a dated closure/override window applying to the
// whole booking page. StartTime < EndTime always holds.
type HolidayException struct {
	ID            uint64    // holiday_exceptions.id
	BookingPageID uint64    // holiday_exceptions.booking_page_id
	Date          string    // holiday_exceptions.date ("YYYY-MM-DD")
	StartTime     string    // holiday_exceptions.start_time ("HH:MM")
	EndTime       string    // holiday_exceptions.end_time ("HH:MM")
	Note          string    // holiday_exceptions.note (optional)
	CreatedAt     time.Time // holiday_exceptions.created_at
}

// SpecialException is a dated override window scoped to a single
// court rather than the whole page.
type SpecialException struct {
	ID        uint64    // special_exceptions.id
	CourtID   uint64    // special_exceptions.court_id
	CourtName string    // joined from courts.name for display
	Date      string    // special_exceptions.date ("YYYY-MM-DD")
	StartTime string    // special_exceptions.start_time ("HH:MM")
	EndTime   string    // special_exceptions.end_time ("HH:MM")
	Note      string    // special_exceptions.note (optional)
	CreatedAt time.Time // special_exceptions.created_at
}
