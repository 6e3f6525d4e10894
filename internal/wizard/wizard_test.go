package wizard

import (
	"context"
	"net/url"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaitozaw/tennislot/internal/model"
	"github.com/kaitozaw/tennislot/internal/repository"
)

// fakeStore is an in-memory EntityStore holding the entity graph of a
// single booking page.
type fakeStore struct {
	page     *model.BookingPage
	slot     *model.SlotDefinition
	rules    map[int]*model.OpeningHourRule
	courts   []*model.Court
	equip    []*model.EquipmentOption
	holidays []*model.HolidayException
	specials []*model.SpecialException
	nextID   uint64
}

func newFakeStore(page *model.BookingPage) *fakeStore {
	return &fakeStore{page: page, rules: map[int]*model.OpeningHourRule{}, nextID: 100}
}

func (f *fakeStore) id() uint64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) Page(ctx context.Context, pageID uint64) (*model.BookingPage, error) {
	if f.page == nil || f.page.ID != pageID {
		return nil, repository.ErrPageNotFound
	}
	return f.page, nil
}

func (f *fakeStore) UpdatePage(ctx context.Context, pageID uint64, name, location string) error {
	if _, err := f.Page(ctx, pageID); err != nil {
		return err
	}
	f.page.Name = name
	f.page.Location = location
	return nil
}

func (f *fakeStore) SlotDefinition(ctx context.Context, pageID uint64) (*model.SlotDefinition, error) {
	return f.slot, nil
}

func (f *fakeStore) SaveSlotDefinition(ctx context.Context, pageID uint64, slotSize int, price decimal.Decimal) error {
	if f.slot == nil {
		f.slot = &model.SlotDefinition{ID: f.id(), BookingPageID: pageID}
	}
	f.slot.SlotSize = slotSize
	f.slot.Price = price
	return nil
}

func (f *fakeStore) OpeningHourRules(ctx context.Context, pageID uint64) ([]*model.OpeningHourRule, error) {
	out := make([]*model.OpeningHourRule, 0, len(f.rules))
	for _, r := range f.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weekday < out[j].Weekday })
	return out, nil
}

func (f *fakeStore) UpsertOpeningHourRule(ctx context.Context, pageID uint64, weekday int, start, end string) error {
	if r, ok := f.rules[weekday]; ok {
		r.StartTime = start
		r.EndTime = end
		return nil
	}
	f.rules[weekday] = &model.OpeningHourRule{
		ID: f.id(), BookingPageID: pageID, Weekday: weekday, StartTime: start, EndTime: end,
	}
	return nil
}

func (f *fakeStore) Courts(ctx context.Context, pageID uint64) ([]*model.Court, error) {
	return f.courts, nil
}

func (f *fakeStore) CreateCourt(ctx context.Context, pageID uint64, name string) (*model.Court, error) {
	c := &model.Court{ID: f.id(), BookingPageID: pageID, Name: name}
	f.courts = append(f.courts, c)
	return c, nil
}

func (f *fakeStore) DeleteCourt(ctx context.Context, pageID, courtID uint64) error {
	for i, c := range f.courts {
		if c.ID == courtID {
			f.courts = append(f.courts[:i], f.courts[i+1:]...)
			return nil
		}
	}
	return repository.ErrCourtNotFound
}

func (f *fakeStore) EquipmentOptions(ctx context.Context, pageID uint64) ([]*model.EquipmentOption, error) {
	return f.equip, nil
}

func (f *fakeStore) CreateEquipmentOption(ctx context.Context, pageID uint64, name string, price decimal.Decimal) (*model.EquipmentOption, error) {
	opt := &model.EquipmentOption{ID: f.id(), BookingPageID: pageID, Name: name, Price: price}
	f.equip = append(f.equip, opt)
	return opt, nil
}

func (f *fakeStore) DeleteEquipmentOption(ctx context.Context, pageID, optionID uint64) error {
	for i, opt := range f.equip {
		if opt.ID == optionID {
			f.equip = append(f.equip[:i], f.equip[i+1:]...)
			return nil
		}
	}
	return repository.ErrItemNotFound
}

func (f *fakeStore) HolidayExceptions(ctx context.Context, pageID uint64) ([]*model.HolidayException, error) {
	return f.holidays, nil
}

func (f *fakeStore) CreateHolidayException(ctx context.Context, pageID uint64, date, start, end, note string) (*model.HolidayException, error) {
	he := &model.HolidayException{
		ID: f.id(), BookingPageID: pageID, Date: date, StartTime: start, EndTime: end, Note: note,
	}
	f.holidays = append(f.holidays, he)
	return he, nil
}

func (f *fakeStore) DeleteHolidayException(ctx context.Context, pageID, exceptionID uint64) error {
	for i, he := range f.holidays {
		if he.ID == exceptionID {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			return nil
		}
	}
	return repository.ErrItemNotFound
}

func (f *fakeStore) SpecialExceptions(ctx context.Context, pageID uint64) ([]*model.SpecialException, error) {
	return f.specials, nil
}

func (f *fakeStore) CreateSpecialException(ctx context.Context, courtID uint64, date, start, end, note string) (*model.SpecialException, error) {
	var name string
	for _, c := range f.courts {
		if c.ID == courtID {
			name = c.Name
		}
	}
	se := &model.SpecialException{
		ID: f.id(), CourtID: courtID, CourtName: name, Date: date, StartTime: start, EndTime: end, Note: note,
	}
	f.specials = append(f.specials, se)
	return se, nil
}

func (f *fakeStore) DeleteSpecialException(ctx context.Context, pageID, exceptionID uint64) error {
	for i, se := range f.specials {
		if se.ID == exceptionID {
			f.specials = append(f.specials[:i], f.specials[i+1:]...)
			return nil
		}
	}
	return repository.ErrItemNotFound
}

// fakeFinalizer records finalize calls and can report slug collisions
// for the first N uniqueness checks.
type fakeFinalizer struct {
	collisions int
	slugChecks int
	slug       string
	created    []*model.Draft
}

func (f *fakeFinalizer) SlugExists(ctx context.Context, slug string) (bool, error) {
	f.slugChecks++
	if f.collisions > 0 {
		f.collisions--
		return true, nil
	}
	return false, nil
}

func (f *fakeFinalizer) CreateFromDraft(ctx context.Context, organiserID uint64, slug string, d *model.Draft) (*model.BookingPage, error) {
	f.slug = slug
	f.created = append(f.created, d)
	return &model.BookingPage{
		ID:          1,
		OrganiserID: organiserID,
		Name:        d.Name,
		Location:    d.Location,
		PublicURL:   slug,
		IsActive:    false,
	}, nil
}

func completeDraft() *model.Draft {
	return &model.Draft{
		Name:     "Riverside Courts",
		Location: "12 Dock Rd",
		Courts:   []model.DraftCourt{{Name: "Court 1"}},
		SlotDefinition: &model.DraftSlotDefinition{
			SlotSize: 60,
			Price:    decimal.RequireFromString("25.00"),
		},
		OpeningHourRules: []model.DraftOpeningHourRule{
			{Weekday: model.Monday, StartTime: "09:00", EndTime: "17:00"},
		},
	}
}

func TestFinalizeRejectsIncompleteDraft(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		mutate func(d *model.Draft)
	}{
		{"missing name", func(d *model.Draft) { d.Name = "  " }},
		{"missing location", func(d *model.Draft) { d.Location = "" }},
		{"no courts", func(d *model.Draft) { d.Courts = nil }},
		{"no slot definition", func(d *model.Draft) { d.SlotDefinition = nil }},
		{"no opening hours", func(d *model.Draft) { d.OpeningHourRules = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fin := &fakeFinalizer{}
			w := New(newFakeStore(nil), fin)
			d := completeDraft()
			tc.mutate(d)

			_, err := w.Finalize(ctx, 1, d)
			assert.ErrorIs(t, err, ErrIncompleteDraft)
			assert.Empty(t, fin.created)
			assert.Zero(t, fin.slugChecks)
		})
	}
}

func TestFinalizeRegeneratesSlugUntilUnique(t *testing.T) {
	ctx := context.Background()
	fin := &fakeFinalizer{collisions: 2}
	w := New(newFakeStore(nil), fin)

	page, err := w.Finalize(ctx, 1, completeDraft())
	require.NoError(t, err)

	// Two taken slugs mean three uniqueness checks but still exactly
	// one create.
	assert.Equal(t, 3, fin.slugChecks)
	require.Len(t, fin.created, 1)
	assert.Equal(t, fin.slug, page.PublicURL)
	assert.NotEmpty(t, page.PublicURL)
}

func TestFinalizeTrimsNameAndLocation(t *testing.T) {
	ctx := context.Background()
	fin := &fakeFinalizer{}
	w := New(newFakeStore(nil), fin)

	d := completeDraft()
	d.Name = "  Riverside Courts  "
	d.Location = " 12 Dock Rd "

	page, err := w.Finalize(ctx, 1, d)
	require.NoError(t, err)
	assert.Equal(t, "Riverside Courts", page.Name)
	assert.Equal(t, "12 Dock Rd", page.Location)
}

func TestWizardCreateScenario(t *testing.T) {
	ctx := context.Background()
	fin := &fakeFinalizer{}
	w := New(newFakeStore(nil), fin)

	draft := w.BeginCreate()
	src := w.DraftSource(draft)
	editor := NewSectionEditor(src)

	err := w.CommitStep(ctx, src, StepBookingPage, url.Values{
		"name":     {"Riverside Courts"},
		"location": {"12 Dock Rd"},
	})
	require.NoError(t, err)

	for _, name := range []string{"Court 1", "Court 2"} {
		_, err = editor.AddItem(ctx, "courts", url.Values{"name": {name}})
		require.NoError(t, err)
	}

	err = w.CommitStep(ctx, src, StepSlotDefinition, url.Values{
		"slot_size": {"60"},
		"price":     {"25.00"},
	})
	require.NoError(t, err)

	_, err = editor.AddItem(ctx, "equipment_options", url.Values{
		"name":  {"Ball machine"},
		"price": {"12.50"},
	})
	require.NoError(t, err)

	err = w.CommitStep(ctx, src, StepOpeningHourRules, url.Values{
		"weekday":    {"0"},
		"start_time": {"09:00"},
		"end_time":   {"17:00"},
	})
	require.NoError(t, err)

	// The save step renders the summary of everything gathered so far.
	view, err := w.RenderStep(ctx, src, StepSave)
	require.NoError(t, err)
	assert.Equal(t, "2", view.Fields["court_count"])
	assert.Equal(t, "1", view.Fields["equipment_count"])
	assert.Equal(t, "1", view.Fields["opening_hour_count"])

	page, err := w.Finalize(ctx, 42, draft)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), page.OrganiserID)
	assert.False(t, page.IsActive)

	require.Len(t, fin.created, 1)
	created := fin.created[0]
	assert.Len(t, created.Courts, 2)
	assert.Len(t, created.EquipmentOptions, 1)
	assert.Len(t, created.OpeningHourRules, 1)
	assert.Equal(t, 60, created.SlotDefinition.SlotSize)
}

func TestEntitySourceUpsertsOpeningHours(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(&model.BookingPage{ID: 7, OrganiserID: 1, Name: "Riverside Courts", Location: "12 Dock Rd"})
	w := New(store, &fakeFinalizer{})
	src := w.EditSource(7)

	err := w.CommitStep(ctx, src, StepOpeningHourRules, url.Values{
		"weekday":    {"0"},
		"start_time": {"09:00"},
		"end_time":   {"17:00"},
	})
	require.NoError(t, err)
	require.Len(t, store.rules, 1)

	// Resubmitting the same weekday overwrites the rule in place
	// instead of growing a second row.
	err = w.CommitStep(ctx, src, StepOpeningHourRules, url.Values{
		"weekday":    {"0"},
		"start_time": {"08:00"},
		"end_time":   {"20:00"},
	})
	require.NoError(t, err)
	require.Len(t, store.rules, 1)
	assert.Equal(t, "08:00", store.rules[0].StartTime)
	assert.Equal(t, "20:00", store.rules[0].EndTime)

	view, err := w.RenderStep(ctx, src, StepOpeningHourRules)
	require.NoError(t, err)
	require.Len(t, view.Rows, 7)
	assert.Equal(t, "08:00", view.Rows[0].StartTime)
	assert.Empty(t, view.Rows[1].StartTime)
}

func TestCommitStepRejectsInvalidStep(t *testing.T) {
	ctx := context.Background()
	w := New(newFakeStore(nil), &fakeFinalizer{})
	src := w.DraftSource(&model.Draft{})

	err := w.CommitStep(ctx, src, Step("payments"), url.Values{})
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestBeginEditPassesThroughLookupError(t *testing.T) {
	ctx := context.Background()
	w := New(newFakeStore(nil), &fakeFinalizer{})

	_, _, err := w.BeginEdit(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrPageNotFound)
}

func TestEntitySourceDeleteUnknownHolidayIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(&model.BookingPage{ID: 7, OrganiserID: 1, Name: "Riverside Courts", Location: "12 Dock Rd"})
	w := New(store, &fakeFinalizer{})
	editor := NewSectionEditor(w.EditSource(7))

	_, err := editor.AddItem(ctx, "holiday_exceptions", url.Values{
		"date":       {"2026-12-25"},
		"start_time": {"00:00"},
		"end_time":   {"23:59"},
	})
	require.NoError(t, err)

	// An id that does not resolve within this page, such as a record
	// belonging to someone else's page, answers not found.
	_, err = editor.DeleteItem(ctx, "holiday_exceptions", ItemRef{ObjectID: 9999})
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
	require.Len(t, store.holidays, 1)
}

func TestBeginEditReturnsPersistedBackend(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(&model.BookingPage{ID: 7, OrganiserID: 1, Name: "Riverside Courts", Location: "12 Dock Rd"})
	store.courts = []*model.Court{{ID: 31, BookingPageID: 7, Name: "Court 1"}}
	w := New(store, &fakeFinalizer{})

	src, page, err := w.BeginEdit(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), page.ID)

	view, err := w.RenderStep(ctx, src, StepCourts)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, uint64(31), view.Items[0].ID)
}
