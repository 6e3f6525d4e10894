package wizard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/model"
)

// PageFields is the validated payload of the booking_page step.
type PageFields struct {
	Name     string
	Location string
}

// SlotFields is the validated payload of the slot_definition step.
type SlotFields struct {
	SlotSize int
	Price    decimal.Decimal
}

// OpeningHourRow is one weekday row of the opening_hour_rules step.
// WeekdayName is filled on render only.
type OpeningHourRow struct {
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekday_name,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// StepData carries the validated payload of one committed step. Only
// the member matching the step is set.
type StepData struct {
	Page         *PageFields
	Slot         *SlotFields
	OpeningHours []OpeningHourRow
}

// StepView is the assembled view state for one step: prefilled scalar
// fields, weekday rows, or the current item list, depending on the
// step kind.
type StepView struct {
	Step   Step              `json:"step"`
	Fields map[string]string `json:"fields,omitempty"`
	Rows   []OpeningHourRow  `json:"rows,omitempty"`
	Items  []Item            `json:"items,omitempty"`
	Courts []CourtChoice     `json:"courts,omitempty"`
}

// Item is the uniform representation of one row in a repeatable
// section, used both as validated add input and as list output. In
// create mode items are addressed by Index (position in the draft
// list); in edit mode by ID. CourtRef is the special-exception court
// reference: a draft court index in create mode, a persisted court id
// in edit mode.
type Item struct {
	ID        uint64           `json:"id,omitempty"`
	Index     int              `json:"index"`
	Name      string           `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Date      string           `json:"date,omitempty"`
	StartTime string           `json:"start_time,omitempty"`
	EndTime   string           `json:"end_time,omitempty"`
	Note      string           `json:"note,omitempty"`
	CourtRef  uint64           `json:"court_ref,omitempty"`
	CourtName string           `json:"court_name,omitempty"`
}

// ItemRef identifies a section item for deletion. Draft sources use
// Index, entity sources use ObjectID.
type ItemRef struct {
	Index    int
	ObjectID uint64
}

// CourtChoice is a selectable court for the special_exceptions
// section. Ref is a draft index in create mode and a persisted court
// id in edit mode.
type CourtChoice struct {
	Ref  uint64 `json:"ref"`
	Name string `json:"name"`
}

// Source abstracts the two wizard storage backends (session draft and
// persisted entities) behind one interface, chosen once at the wizard
// boundary. Step and section logic never branches on mode.
type Source interface {
	// ReadStep assembles the view state for a step.
	ReadStep(ctx context.Context, step Step) (*StepView, error)
	// WriteStep stores a validated step payload.
	WriteStep(ctx context.Context, step Step, data *StepData) error
	// AddItem appends a validated section item and returns the
	// refreshed list.
	AddItem(ctx context.Context, section Section, item Item) ([]Item, error)
	// DeleteItem removes one section item and returns the refreshed
	// list. Draft sources treat an out-of-range index as a no-op;
	// entity sources fail with a not-found error for unresolvable ids.
	DeleteItem(ctx context.Context, section Section, ref ItemRef) ([]Item, error)
	// ListItems returns the current item list for a section.
	ListItems(ctx context.Context, section Section) ([]Item, error)
	// CourtChoices returns the courts selectable for special
	// exceptions on this page or draft.
	CourtChoices(ctx context.Context) ([]CourtChoice, error)
}

// weekdayRows materializes the full 7-row weekday grid from however
// many rules exist, leaving blank times for weekdays without a rule.
func weekdayRows(rules []OpeningHourRow) []OpeningHourRow {
	byDay := map[int]OpeningHourRow{}
	for _, r := range rules {
		byDay[r.Weekday] = r
	}
	rows := make([]OpeningHourRow, 0, 7)
	for wd := 0; wd < 7; wd++ {
		row := OpeningHourRow{Weekday: wd, WeekdayName: model.WeekdayNames[wd]}
		if r, ok := byDay[wd]; ok {
			row.StartTime = r.StartTime
			row.EndTime = r.EndTime
		}
		rows = append(rows, row)
	}
	return rows
}
