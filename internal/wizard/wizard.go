package wizard

import (
	"context"
	"net/url"
	"strings"

	"github.com/kaitozaw/tennislot/internal/model"
	"github.com/kaitozaw/tennislot/internal/utils"
)

// Finalizer is the persistence port for the terminal commit: checking
// slug uniqueness and turning a complete draft into a booking page
// with all of its children in one all-or-nothing transaction.
type Finalizer interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
	CreateFromDraft(ctx context.Context, organiserID uint64, slug string, d *model.Draft) (*model.BookingPage, error)
}

// Controller drives the organiser through the wizard's ordered step
// sequence: assembling step views, validating and committing step
// submissions against either backend, and performing the terminal
// persistence action for create mode.
type Controller struct {
	store EntityStore
	fin   Finalizer
}

// New constructs a Controller. Both dependencies must be non-nil.
func New(store EntityStore, fin Finalizer) *Controller {
	if store == nil || fin == nil {
		panic("nil dependency passed to wizard.New")
	}
	return &Controller{store: store, fin: fin}
}

// BeginCreate starts a fresh create-mode run: an empty draft that the
// caller keys to its session.
func (w *Controller) BeginCreate() *model.Draft { return &model.Draft{} }

// BeginEdit starts an edit-mode run against a persisted page. The
// page lookup error (not found included) is passed through untouched.
func (w *Controller) BeginEdit(ctx context.Context, pageID uint64) (Source, *model.BookingPage, error) {
	page, err := w.store.Page(ctx, pageID)
	if err != nil {
		return nil, nil, err
	}
	return NewEntitySource(w.store, page.ID), page, nil
}

// DraftSource wraps a loaded session draft for create-mode requests.
func (w *Controller) DraftSource(d *model.Draft) Source { return NewDraftSource(d) }

// EditSource returns the persisted backend for a page whose existence
// and ownership the caller has already established.
func (w *Controller) EditSource(pageID uint64) Source { return NewEntitySource(w.store, pageID) }

// RenderStep assembles the view state for one step, prefilled from
// whichever backend the source wraps.
func (w *Controller) RenderStep(ctx context.Context, src Source, step Step) (*StepView, error) {
	if _, err := ParseStep(string(step)); err != nil {
		return nil, err
	}
	return src.ReadStep(ctx, step)
}

// CommitStep validates the submitted fields for a step and writes them
// through the source. The list-backed steps (courts, equipment
// options) and the terminal save step carry no step data of their own;
// committing them is a no-op because their contents are mutated
// through the section editor. On validation failure nothing is written
// and the per-field errors are returned.
func (w *Controller) CommitStep(ctx context.Context, src Source, step Step, form url.Values) error {
	switch step {
	case StepBookingPage:
		page, verr := validateBookingPageStep(form)
		if verr != nil {
			return verr
		}
		return src.WriteStep(ctx, step, &StepData{Page: page})
	case StepSlotDefinition:
		slot, verr := validateSlotDefinitionStep(form)
		if verr != nil {
			return verr
		}
		return src.WriteStep(ctx, step, &StepData{Slot: slot})
	case StepOpeningHourRules:
		rows, verr := validateOpeningHoursStep(form)
		if verr != nil {
			return verr
		}
		return src.WriteStep(ctx, step, &StepData{OpeningHours: rows})
	case StepCourts, StepEquipmentOptions, StepSave:
		return nil
	default:
		return ErrInvalidStep
	}
}

// Finalize is the one-time atomic transformation of a complete draft
// into persisted entities. It requires a name, a location, at least
// one court, a slot definition and at least one opening hour rule;
// equipment options and exceptions may be empty. The public slug is
// generated randomly and re-checked against existing pages until
// unique. On success the page is created inactive with all children in
// a single transaction; the caller discards the draft afterwards.
func (w *Controller) Finalize(ctx context.Context, organiserID uint64, d *model.Draft) (*model.BookingPage, error) {
	name := strings.TrimSpace(d.Name)
	location := strings.TrimSpace(d.Location)
	if name == "" || location == "" ||
		len(d.Courts) == 0 || d.SlotDefinition == nil || len(d.OpeningHourRules) == 0 {
		return nil, ErrIncompleteDraft
	}
	d.Name = name
	d.Location = location

	var slug string
	for {
		s, err := utils.PublicSlug()
		if err != nil {
			return nil, err
		}
		exists, err := w.fin.SlugExists(ctx, s)
		if err != nil {
			return nil, err
		}
		if !exists {
			slug = s
			break
		}
	}

	return w.fin.CreateFromDraft(ctx, organiserID, slug, d)
}
