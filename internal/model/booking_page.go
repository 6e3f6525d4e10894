package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingPage is a public venue listing configured by an organiser.
// It owns courts, a single slot definition, equipment options,
// opening hour rules and holiday exceptions. The PublicURL slug is
// globally unique and never changes once assigned.
//
// Fields:
//  ID          – primary key identifier.
//  OrganiserID – owning organiser's ID.
//  Name        – display name of the venue.
//  Location    – human readable address.
//  PublicURL   – unique URL-safe slug used under /book/:slug.
//  IsActive    – whether the page is visible to players.
//  CreatedAt   – creation timestamp.
type BookingPage struct {
	ID          uint64    // booking_pages.id
	OrganiserID uint64    // booking_pages.organiser_id
	Name        string    // booking_pages.name
	Location    string    // booking_pages.location
	PublicURL   string    // booking_pages.public_url
	IsActive    bool      // booking_pages.is_active
	CreatedAt   time.Time // booking_pages.created_at
}

// Valid slot sizes in minutes. A slot definition may only use one of these.
const (
	SlotSize30 = 30
	SlotSize60 = 60
)

// ValidSlotSize reports whether n is an allowed slot duration.
func ValidSlotSize(n int) bool { return n == SlotSize30 || n == SlotSize60 }

// SlotDefinition describes how a booking page slices its day into
// bookable slots. Exactly one exists per page (unique on
// booking_page_id), enforced at creation and preserved by upserts.
type SlotDefinition struct {
	ID            uint64          // slot_definitions.id
	BookingPageID uint64          // slot_definitions.booking_page_id
	SlotSize      int             // slot_definitions.slot_size (30 or 60)
	Price         decimal.Decimal // slot_definitions.price, 2 decimal places
	CreatedAt     time.Time       // slot_definitions.created_at
}

// EquipmentOption is a rentable add-on (rackets, ball machines, ...)
// offered by a booking page. Names are unique within a page.
type EquipmentOption struct {
	ID            uint64          // equipment_options.id
	BookingPageID uint64          // equipment_options.booking_page_id
	Name          string          // equipment_options.name
	Price         decimal.Decimal // equipment_options.price, 2 decimal places
	CreatedAt     time.Time       // equipment_options.created_at
}
