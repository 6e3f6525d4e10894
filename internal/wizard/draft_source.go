package wizard

import (
	"context"
	"strconv"

	"github.com/kaitozaw/tennislot/internal/model"
)

// DraftSource is the create-mode backend: every read and write targets
// the in-memory session draft. The caller owns loading the draft before
// the request and storing it back afterwards; DraftSource itself never
// touches the database or Redis.
type DraftSource struct {
	draft *model.Draft
}

// NewDraftSource wraps a session draft in the Source interface.
func NewDraftSource(d *model.Draft) *DraftSource { return &DraftSource{draft: d} }

// Draft exposes the wrapped draft so the handler can persist it after
// a mutation.
func (s *DraftSource) Draft() *model.Draft { return s.draft }

func (s *DraftSource) ReadStep(ctx context.Context, step Step) (*StepView, error) {
	d := s.draft
	view := &StepView{Step: step}
	switch step {
	case StepBookingPage:
		view.Fields = map[string]string{"name": d.Name, "location": d.Location}
	case StepCourts:
		view.Items, _ = s.ListItems(ctx, SectionCourts)
	case StepSlotDefinition:
		view.Fields = map[string]string{"slot_size": "", "price": ""}
		if sd := d.SlotDefinition; sd != nil {
			view.Fields["slot_size"] = strconv.Itoa(sd.SlotSize)
			view.Fields["price"] = sd.Price.StringFixed(2)
		}
	case StepEquipmentOptions:
		view.Items, _ = s.ListItems(ctx, SectionEquipmentOptions)
	case StepOpeningHourRules:
		rows := make([]OpeningHourRow, 0, len(d.OpeningHourRules))
		for _, r := range d.OpeningHourRules {
			rows = append(rows, OpeningHourRow{Weekday: r.Weekday, StartTime: r.StartTime, EndTime: r.EndTime})
		}
		view.Rows = weekdayRows(rows)
	case StepSave:
		view.Fields = map[string]string{
			"name":               d.Name,
			"location":           d.Location,
			"court_count":        strconv.Itoa(len(d.Courts)),
			"equipment_count":    strconv.Itoa(len(d.EquipmentOptions)),
			"opening_hour_count": strconv.Itoa(len(d.OpeningHourRules)),
		}
	default:
		return nil, ErrInvalidStep
	}
	return view, nil
}

func (s *DraftSource) WriteStep(ctx context.Context, step Step, data *StepData) error {
	d := s.draft
	switch step {
	case StepBookingPage:
		d.Name = data.Page.Name
		d.Location = data.Page.Location
	case StepSlotDefinition:
		d.SlotDefinition = &model.DraftSlotDefinition{
			SlotSize: data.Slot.SlotSize,
			Price:    data.Slot.Price,
		}
	case StepOpeningHourRules:
		// Full replace: the submission carries every complete weekday row.
		rules := make([]model.DraftOpeningHourRule, 0, len(data.OpeningHours))
		for _, row := range data.OpeningHours {
			rules = append(rules, model.DraftOpeningHourRule{
				Weekday:   row.Weekday,
				StartTime: row.StartTime,
				EndTime:   row.EndTime,
			})
		}
		d.OpeningHourRules = rules
	default:
		return ErrInvalidStep
	}
	return nil
}

func (s *DraftSource) AddItem(ctx context.Context, section Section, item Item) ([]Item, error) {
	d := s.draft
	switch section {
	case SectionCourts:
		d.Courts = append(d.Courts, model.DraftCourt{Name: item.Name})
	case SectionEquipmentOptions:
		d.EquipmentOptions = append(d.EquipmentOptions, model.DraftEquipmentOption{
			Name:  item.Name,
			Price: *item.Price,
		})
	case SectionHolidayExceptions:
		d.HolidayExceptions = append(d.HolidayExceptions, model.DraftHolidayException{
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Note:      item.Note,
		})
	case SectionSpecialExceptions:
		d.SpecialExceptions = append(d.SpecialExceptions, model.DraftSpecialException{
			CourtIndex: int(item.CourtRef),
			Date:       item.Date,
			StartTime:  item.StartTime,
			EndTime:    item.EndTime,
			Note:       item.Note,
		})
	default:
		return nil, ErrInvalidSection
	}
	return s.ListItems(ctx, section)
}

func (s *DraftSource) DeleteItem(ctx context.Context, section Section, ref ItemRef) ([]Item, error) {
	d := s.draft
	idx := ref.Index
	switch section {
	case SectionCourts:
		if idx >= 0 && idx < len(d.Courts) {
			d.Courts = append(d.Courts[:idx], d.Courts[idx+1:]...)
			s.dropSpecialsForCourt(idx)
		}
	case SectionEquipmentOptions:
		if idx >= 0 && idx < len(d.EquipmentOptions) {
			d.EquipmentOptions = append(d.EquipmentOptions[:idx], d.EquipmentOptions[idx+1:]...)
		}
	case SectionHolidayExceptions:
		if idx >= 0 && idx < len(d.HolidayExceptions) {
			d.HolidayExceptions = append(d.HolidayExceptions[:idx], d.HolidayExceptions[idx+1:]...)
		}
	case SectionSpecialExceptions:
		if idx >= 0 && idx < len(d.SpecialExceptions) {
			d.SpecialExceptions = append(d.SpecialExceptions[:idx], d.SpecialExceptions[idx+1:]...)
		}
	default:
		return nil, ErrInvalidSection
	}
	return s.ListItems(ctx, section)
}

// dropSpecialsForCourt keeps special-exception court indices coherent
// when a draft court is removed: exceptions on the removed court are
// dropped and higher indices shift down by one.
func (s *DraftSource) dropSpecialsForCourt(courtIdx int) {
	kept := s.draft.SpecialExceptions[:0]
	for _, se := range s.draft.SpecialExceptions {
		if se.CourtIndex == courtIdx {
			continue
		}
		if se.CourtIndex > courtIdx {
			se.CourtIndex--
		}
		kept = append(kept, se)
	}
	s.draft.SpecialExceptions = kept
}

func (s *DraftSource) ListItems(ctx context.Context, section Section) ([]Item, error) {
	d := s.draft
	var items []Item
	switch section {
	case SectionCourts:
		for i, court := range d.Courts {
			items = append(items, Item{Index: i, Name: court.Name})
		}
	case SectionEquipmentOptions:
		for i, opt := range d.EquipmentOptions {
			price := opt.Price
			items = append(items, Item{Index: i, Name: opt.Name, Price: &price})
		}
	case SectionHolidayExceptions:
		for i, he := range d.HolidayExceptions {
			items = append(items, Item{
				Index: i, Date: he.Date, StartTime: he.StartTime, EndTime: he.EndTime, Note: he.Note,
			})
		}
	case SectionSpecialExceptions:
		for i, se := range d.SpecialExceptions {
			item := Item{
				Index: i, CourtRef: uint64(se.CourtIndex),
				Date: se.Date, StartTime: se.StartTime, EndTime: se.EndTime, Note: se.Note,
			}
			if se.CourtIndex >= 0 && se.CourtIndex < len(d.Courts) {
				item.CourtName = d.Courts[se.CourtIndex].Name
			}
			items = append(items, item)
		}
	default:
		return nil, ErrInvalidSection
	}
	return items, nil
}

func (s *DraftSource) CourtChoices(ctx context.Context) ([]CourtChoice, error) {
	choices := make([]CourtChoice, 0, len(s.draft.Courts))
	for i, court := range s.draft.Courts {
		choices = append(choices, CourtChoice{Ref: uint64(i), Name: court.Name})
	}
	return choices, nil
}
