package wizard

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/model"
)

// EntityStore is the persistence port the edit-mode backend works
// through. It is implemented by repository.Store over MySQL; tests
// substitute an in-memory fake. All operations are scoped to one
// booking page; Delete methods must return an error satisfying the
// repository's not-found sentinel when the id does not resolve within
// that scope.
type EntityStore interface {
	Page(ctx context.Context, pageID uint64) (*model.BookingPage, error)
	UpdatePage(ctx context.Context, pageID uint64, name, location string) error

	SlotDefinition(ctx context.Context, pageID uint64) (*model.SlotDefinition, error)
	SaveSlotDefinition(ctx context.Context, pageID uint64, slotSize int, price decimal.Decimal) error

	OpeningHourRules(ctx context.Context, pageID uint64) ([]*model.OpeningHourRule, error)
	UpsertOpeningHourRule(ctx context.Context, pageID uint64, weekday int, start, end string) error

	Courts(ctx context.Context, pageID uint64) ([]*model.Court, error)
	CreateCourt(ctx context.Context, pageID uint64, name string) (*model.Court, error)
	DeleteCourt(ctx context.Context, pageID, courtID uint64) error

	EquipmentOptions(ctx context.Context, pageID uint64) ([]*model.EquipmentOption, error)
	CreateEquipmentOption(ctx context.Context, pageID uint64, name string, price decimal.Decimal) (*model.EquipmentOption, error)
	DeleteEquipmentOption(ctx context.Context, pageID, optionID uint64) error

	HolidayExceptions(ctx context.Context, pageID uint64) ([]*model.HolidayException, error)
	CreateHolidayException(ctx context.Context, pageID uint64, date, start, end, note string) (*model.HolidayException, error)
	DeleteHolidayException(ctx context.Context, pageID, exceptionID uint64) error

	SpecialExceptions(ctx context.Context, pageID uint64) ([]*model.SpecialException, error)
	CreateSpecialException(ctx context.Context, courtID uint64, date, start, end, note string) (*model.SpecialException, error)
	DeleteSpecialException(ctx context.Context, pageID, exceptionID uint64) error
}

// EntitySource is the edit-mode backend: reads and writes go directly
// to the persisted entity graph of one booking page, record by record,
// with no draft staging.
type EntitySource struct {
	store  EntityStore
	pageID uint64
}

// NewEntitySource binds the persistence port to one booking page.
func NewEntitySource(store EntityStore, pageID uint64) *EntitySource {
	return &EntitySource{store: store, pageID: pageID}
}

func (s *EntitySource) ReadStep(ctx context.Context, step Step) (*StepView, error) {
	view := &StepView{Step: step}
	switch step {
	case StepBookingPage, StepSave:
		page, err := s.store.Page(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		view.Fields = map[string]string{"name": page.Name, "location": page.Location}
	case StepCourts:
		items, err := s.ListItems(ctx, SectionCourts)
		if err != nil {
			return nil, err
		}
		view.Items = items
	case StepSlotDefinition:
		view.Fields = map[string]string{"slot_size": "", "price": ""}
		sd, err := s.store.SlotDefinition(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		if sd != nil {
			view.Fields["slot_size"] = strconv.Itoa(sd.SlotSize)
			view.Fields["price"] = sd.Price.StringFixed(2)
		}
	case StepEquipmentOptions:
		items, err := s.ListItems(ctx, SectionEquipmentOptions)
		if err != nil {
			return nil, err
		}
		view.Items = items
	case StepOpeningHourRules:
		rules, err := s.store.OpeningHourRules(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		rows := make([]OpeningHourRow, 0, len(rules))
		for _, r := range rules {
			rows = append(rows, OpeningHourRow{Weekday: r.Weekday, StartTime: r.StartTime, EndTime: r.EndTime})
		}
		view.Rows = weekdayRows(rows)
	default:
		return nil, ErrInvalidStep
	}
	return view, nil
}

func (s *EntitySource) WriteStep(ctx context.Context, step Step, data *StepData) error {
	switch step {
	case StepBookingPage:
		return s.store.UpdatePage(ctx, s.pageID, data.Page.Name, data.Page.Location)
	case StepSlotDefinition:
		// Full replace on the single slot definition row. The unique key
		// on booking_page_id means a second row can never appear.
		return s.store.SaveSlotDefinition(ctx, s.pageID, data.Slot.SlotSize, data.Slot.Price)
	case StepOpeningHourRules:
		// Upsert per weekday: create the rule when absent, overwrite its
		// times when present. Blank rows were dropped during validation
		// and existing rules for those weekdays are left untouched.
		for _, row := range data.OpeningHours {
			if err := s.store.UpsertOpeningHourRule(ctx, s.pageID, row.Weekday, row.StartTime, row.EndTime); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrInvalidStep
	}
}

func (s *EntitySource) AddItem(ctx context.Context, section Section, item Item) ([]Item, error) {
	var err error
	switch section {
	case SectionCourts:
		_, err = s.store.CreateCourt(ctx, s.pageID, item.Name)
	case SectionEquipmentOptions:
		_, err = s.store.CreateEquipmentOption(ctx, s.pageID, item.Name, *item.Price)
	case SectionHolidayExceptions:
		_, err = s.store.CreateHolidayException(ctx, s.pageID, item.Date, item.StartTime, item.EndTime, item.Note)
	case SectionSpecialExceptions:
		_, err = s.store.CreateSpecialException(ctx, item.CourtRef, item.Date, item.StartTime, item.EndTime, item.Note)
	default:
		return nil, ErrInvalidSection
	}
	if err != nil {
		return nil, err
	}
	return s.ListItems(ctx, section)
}

func (s *EntitySource) DeleteItem(ctx context.Context, section Section, ref ItemRef) ([]Item, error) {
	var err error
	switch section {
	case SectionCourts:
		err = s.store.DeleteCourt(ctx, s.pageID, ref.ObjectID)
	case SectionEquipmentOptions:
		err = s.store.DeleteEquipmentOption(ctx, s.pageID, ref.ObjectID)
	case SectionHolidayExceptions:
		err = s.store.DeleteHolidayException(ctx, s.pageID, ref.ObjectID)
	case SectionSpecialExceptions:
		err = s.store.DeleteSpecialException(ctx, s.pageID, ref.ObjectID)
	default:
		return nil, ErrInvalidSection
	}
	if err != nil {
		return nil, err
	}
	return s.ListItems(ctx, section)
}

func (s *EntitySource) ListItems(ctx context.Context, section Section) ([]Item, error) {
	var items []Item
	switch section {
	case SectionCourts:
		courts, err := s.store.Courts(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		for i, court := range courts {
			items = append(items, Item{ID: court.ID, Index: i, Name: court.Name})
		}
	case SectionEquipmentOptions:
		opts, err := s.store.EquipmentOptions(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		for i, opt := range opts {
			price := opt.Price
			items = append(items, Item{ID: opt.ID, Index: i, Name: opt.Name, Price: &price})
		}
	case SectionHolidayExceptions:
		hes, err := s.store.HolidayExceptions(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		for i, he := range hes {
			items = append(items, Item{
				ID: he.ID, Index: i,
				Date: he.Date, StartTime: he.StartTime, EndTime: he.EndTime, Note: he.Note,
			})
		}
	case SectionSpecialExceptions:
		ses, err := s.store.SpecialExceptions(ctx, s.pageID)
		if err != nil {
			return nil, err
		}
		for i, se := range ses {
			items = append(items, Item{
				ID: se.ID, Index: i, CourtRef: se.CourtID, CourtName: se.CourtName,
				Date: se.Date, StartTime: se.StartTime, EndTime: se.EndTime, Note: se.Note,
			})
		}
	default:
		return nil, ErrInvalidSection
	}
	return items, nil
}

func (s *EntitySource) CourtChoices(ctx context.Context) ([]CourtChoice, error) {
	courts, err := s.store.Courts(ctx, s.pageID)
	if err != nil {
		return nil, err
	}
	choices := make([]CourtChoice, 0, len(courts))
	for _, court := range courts {
		choices = append(choices, CourtChoice{Ref: court.ID, Name: court.Name})
	}
	return choices, nil
}
