package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Draft is the session-scoped, unpersisted representation of a booking
// page under construction. It is an explicit serializable value: the
// wizard loads it at the start of a request, mutates it in memory and
// stores it back at the end. Nothing in a draft exists in the database
// until the draft is finalized, at which point all of it is created in
// one transaction and the draft is discarded.
//
// Sub-items carry no identifiers; they are addressed by list position,
// and list order is strict append order (the rendered order).
type Draft struct {
	Name              string                  `json:"name,omitempty"`
	Location          string                  `json:"location,omitempty"`
	Courts            []DraftCourt            `json:"courts,omitempty"`
	SlotDefinition    *DraftSlotDefinition    `json:"slot_definition,omitempty"`
	EquipmentOptions  []DraftEquipmentOption  `json:"equipment_options,omitempty"`
	OpeningHourRules  []DraftOpeningHourRule  `json:"opening_hour_rules,omitempty"`
	HolidayExceptions []DraftHolidayException `json:"holiday_exceptions,omitempty"`
	SpecialExceptions []DraftSpecialException `json:"special_exceptions,omitempty"`
}

// DraftCourt is a court pending creation.
type DraftCourt struct {
	Name string `json:"name"`
}

// DraftSlotDefinition is the pending slot definition. Price is kept as
// a decimal so the draft serializes without losing fixed-point
// precision.
type DraftSlotDefinition struct {
	SlotSize int             `json:"slot_size"`
	Price    decimal.Decimal `json:"price"`
}

// DraftEquipmentOption is an equipment add-on pending creation.
type DraftEquipmentOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// DraftOpeningHourRule is a weekday opening window pending creation.
type DraftOpeningHourRule struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DraftHolidayException is a page-wide closure window pending creation.
type DraftHolidayException struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`
}

// DraftSpecialException is a court-scoped override window pending
// creation. The court is referenced by its position in Draft.Courts
// because draft courts have no identifiers yet.
type DraftSpecialException struct {
	CourtIndex int    `json:"court_index"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Note       string `json:"note,omitempty"`
}

// MarshalBinary lets a Draft be stored directly as a Redis value.
func (d *Draft) MarshalBinary() ([]byte, error) { return json.Marshal(d) }

// UnmarshalBinary restores a Draft from its Redis value.
func (d *Draft) UnmarshalBinary(b []byte) error { return json.Unmarshal(b, d) }
