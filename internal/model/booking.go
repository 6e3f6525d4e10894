package model

import "time"

// Payment status values for a booking.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// ValidPaymentStatus reports whether s is a recognized payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentUnpaid || s == PaymentPaid || s == PaymentRefunded
}

// Booking is a player's reservation of a court for a date and time
// range. Availability computation and payment processing live outside
// this service; bookings are stored and surfaced to organisers only.
type Booking struct {
	ID            uint64    // bookings.id
	CourtID       uint64    // bookings.court_id
	CourtName     string    // joined from courts.name for display
	Date          string    // bookings.date ("YYYY-MM-DD")
	StartTime     string    // bookings.start_time ("HH:MM")
	EndTime       string    // bookings.end_time ("HH:MM")
	PlayerEmail   string    // bookings.player_email
	PlayerPhone   string    // bookings.player_phone
	PaymentStatus string    // bookings.payment_status (unpaid/paid/refunded)
	CreatedAt     time.Time // bookings.created_at

	// Equipment holds the rented add-on line items for this booking.
	Equipment []BookingEquipmentOption
}

// BookingEquipmentOption is one equipment line item on a booking.
// A booking carries at most one line per equipment option.
type BookingEquipmentOption struct {
	ID                uint64 // booking_equipment_options.id
	BookingID         uint64 // booking_equipment_options.booking_id
	EquipmentOptionID uint64 // booking_equipment_options.equipment_option_id
	EquipmentName     string // joined from equipment_options.name for display
	Quantity          uint32 // booking_equipment_options.quantity (>= 1)
}
