// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingPageCreatedEvent is published when a wizard draft is finalized
// into a persisted booking page. It carries enough for downstream
// consumers (notifications, analytics) to act without querying the
// primary database. The page is created inactive; the organiser
// activates it from the dashboard.
type BookingPageCreatedEvent struct {
	BookingPageID uint64 `json:"booking_page_id"`
	OrganiserID   uint64 `json:"organiser_id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	PublicURL     string `json:"public_url"`
	CourtCount    int    `json:"court_count"`
	CreatedAt     string `json:"created_at"`
}
