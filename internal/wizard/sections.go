package wizard

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Section names one of the repeatable sub-entity collections managed
// through the uniform add/delete operations.
type Section string

const (
	SectionCourts            Section = "courts"
	SectionEquipmentOptions  Section = "equipment_options"
	SectionHolidayExceptions Section = "holiday_exceptions"
	SectionSpecialExceptions Section = "special_exceptions"
)

// sectionConfig is the declarative per-section descriptor: how to
// validate submitted fields, which draft key the section occupies, and
// whether items reference a court. Dispatch is data driven; adding a
// section means adding a table entry.
type sectionConfig struct {
	draftKey   string
	needsCourt bool
	validate   func(v url.Values) (Item, *ValidationError)
}

var sectionConfigs = map[Section]sectionConfig{
	SectionCourts: {
		draftKey: "courts",
		validate: validateCourtItem,
	},
	SectionEquipmentOptions: {
		draftKey: "equipment_options",
		validate: validateEquipmentItem,
	},
	SectionHolidayExceptions: {
		draftKey: "holiday_exceptions",
		validate: validateHolidayItem,
	},
	SectionSpecialExceptions: {
		draftKey:   "special_exceptions",
		needsCourt: true,
		validate:   validateSpecialItem,
	},
}

// ParseSection validates a section name supplied by a client.
func ParseSection(s string) (Section, error) {
	sec := Section(s)
	if _, ok := sectionConfigs[sec]; !ok {
		return "", ErrInvalidSection
	}
	return sec, nil
}

func validateCourtItem(v url.Values) (Item, *ValidationError) {
	errs := fieldErrors{}
	name := strings.TrimSpace(v.Get("name"))
	if name == "" {
		errs.add("name", "required")
	} else if len(name) > maxNameLen {
		errs.add("name", "too long")
	}
	if verr := errs.err(); verr != nil {
		return Item{}, verr
	}
	return Item{Name: name}, nil
}

func validateEquipmentItem(v url.Values) (Item, *ValidationError) {
	errs := fieldErrors{}
	name := strings.TrimSpace(v.Get("name"))
	if name == "" {
		errs.add("name", "required")
	} else if len(name) > maxNameLen {
		errs.add("name", "too long")
	}
	price, ok := parsePrice(v.Get("price"))
	if v.Get("price") == "" {
		errs.add("price", "required")
	} else if !ok {
		errs.add("price", "invalid price")
	}
	if verr := errs.err(); verr != nil {
		return Item{}, verr
	}
	return Item{Name: name, Price: &price}, nil
}

func validateHolidayItem(v url.Values) (Item, *ValidationError) {
	errs := fieldErrors{}
	date, start, end, note := validateTimeWindow(v, errs)
	if verr := errs.err(); verr != nil {
		return Item{}, verr
	}
	return Item{Date: date, StartTime: start, EndTime: end, Note: note}, nil
}

func validateSpecialItem(v url.Values) (Item, *ValidationError) {
	errs := fieldErrors{}
	courtRef, err := strconv.ParseUint(strings.TrimSpace(v.Get("court")), 10, 64)
	if v.Get("court") == "" {
		errs.add("court", "required")
	} else if err != nil {
		errs.add("court", "invalid court")
	}
	date, start, end, note := validateTimeWindow(v, errs)
	if verr := errs.err(); verr != nil {
		return Item{}, verr
	}
	return Item{CourtRef: courtRef, Date: date, StartTime: start, EndTime: end, Note: note}, nil
}

// SectionEditor performs list-style add/list/delete over the four
// repeatable sections of one wizard source. The backing store (draft
// or persisted) is fixed at construction; the editor itself never
// branches on mode.
type SectionEditor struct {
	src Source
}

// NewSectionEditor binds the editor to a wizard source.
func NewSectionEditor(src Source) *SectionEditor { return &SectionEditor{src: src} }

// AddItem validates the submitted fields against the section's rules
// and appends the item, returning the refreshed list. Special
// exceptions must cite a court belonging to this page or draft;
// anything else fails with ErrInvalidCourtReference before any
// mutation.
func (e *SectionEditor) AddItem(ctx context.Context, section string, v url.Values) ([]Item, error) {
	sec, err := ParseSection(section)
	if err != nil {
		return nil, err
	}
	cfg := sectionConfigs[sec]
	item, verr := cfg.validate(v)
	if verr != nil {
		return nil, verr
	}
	if cfg.needsCourt {
		choices, err := e.src.CourtChoices(ctx)
		if err != nil {
			return nil, err
		}
		found := false
		for _, choice := range choices {
			if choice.Ref == item.CourtRef {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrInvalidCourtReference
		}
	}
	return e.src.AddItem(ctx, sec, item)
}

// DeleteItem removes one item and returns the refreshed list. The
// reference is positional for drafts and an object id for persisted
// records; resolution is the source's concern.
func (e *SectionEditor) DeleteItem(ctx context.Context, section string, ref ItemRef) ([]Item, error) {
	sec, err := ParseSection(section)
	if err != nil {
		return nil, err
	}
	return e.src.DeleteItem(ctx, sec, ref)
}

// ListItems returns the current list for a section together with the
// court choices when the section references courts.
func (e *SectionEditor) ListItems(ctx context.Context, section string) ([]Item, []CourtChoice, error) {
	sec, err := ParseSection(section)
	if err != nil {
		return nil, nil, err
	}
	items, err := e.src.ListItems(ctx, sec)
	if err != nil {
		return nil, nil, err
	}
	var choices []CourtChoice
	if sectionConfigs[sec].needsCourt {
		if choices, err = e.src.CourtChoices(ctx); err != nil {
			return nil, nil, err
		}
	}
	return items, choices, nil
}
