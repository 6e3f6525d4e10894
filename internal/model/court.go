package model

import "time"

// Court is a single bookable court on a booking page. Court names are
// unique within their page. Courts own special exceptions and are
// referenced by bookings.
type Court struct {
	ID            uint64    // courts.id
	BookingPageID uint64    // courts.booking_page_id
	Name          string    // courts.name
	CreatedAt     time.Time // courts.created_at
}
