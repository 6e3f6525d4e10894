package wizard

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaitozaw/tennislot/internal/model"
)

func draftEditor() (*SectionEditor, *model.Draft) {
	d := &model.Draft{}
	return NewSectionEditor(NewDraftSource(d)), d
}

func TestSectionEditorAddAndDeleteCourts(t *testing.T) {
	ctx := context.Background()
	editor, draft := draftEditor()

	items, err := editor.AddItem(ctx, "courts", url.Values{"name": {"Court 1"}})
	require.NoError(t, err)
	items, err = editor.AddItem(ctx, "courts", url.Values{"name": {"Court 2"}})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Court 1", items[0].Name)
	assert.Equal(t, 1, items[1].Index)

	items, err = editor.DeleteItem(ctx, "courts", ItemRef{Index: 0})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Court 2", items[0].Name)
	assert.Len(t, draft.Courts, 1)

	// Deleting then re-adding restores the original length.
	items, err = editor.AddItem(ctx, "courts", url.Values{"name": {"Court 3"}})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSectionEditorDeleteOutOfRangeIsNoOp(t *testing.T) {
	ctx := context.Background()
	editor, draft := draftEditor()

	_, err := editor.AddItem(ctx, "courts", url.Values{"name": {"Court 1"}})
	require.NoError(t, err)

	items, err := editor.DeleteItem(ctx, "courts", ItemRef{Index: 7})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = editor.DeleteItem(ctx, "courts", ItemRef{Index: -1})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, draft.Courts, 1)
}

func TestSectionEditorRejectsUnknownSection(t *testing.T) {
	ctx := context.Background()
	editor, _ := draftEditor()

	_, err := editor.AddItem(ctx, "memberships", url.Values{"name": {"x"}})
	assert.ErrorIs(t, err, ErrInvalidSection)

	_, err = editor.DeleteItem(ctx, "memberships", ItemRef{Index: 0})
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestSectionEditorValidationFailureMutatesNothing(t *testing.T) {
	ctx := context.Background()
	editor, draft := draftEditor()

	_, err := editor.AddItem(ctx, "courts", url.Values{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Empty(t, draft.Courts)

	_, err = editor.AddItem(ctx, "equipment_options", url.Values{
		"name":  {"Racket"},
		"price": {"-3"},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
	assert.Empty(t, draft.EquipmentOptions)
}

func TestSectionEditorSpecialExceptionCourtReference(t *testing.T) {
	ctx := context.Background()
	editor, draft := draftEditor()

	_, err := editor.AddItem(ctx, "courts", url.Values{"name": {"Court 1"}})
	require.NoError(t, err)
	_, err = editor.AddItem(ctx, "courts", url.Values{"name": {"Court 2"}})
	require.NoError(t, err)

	window := url.Values{
		"date":       {"2026-09-01"},
		"start_time": {"12:00"},
		"end_time":   {"14:00"},
		"note":       {"resurfacing"},
	}

	// A court index outside the draft's court list is rejected before
	// any mutation.
	bad := url.Values{"court": {"5"}}
	for k, v := range window {
		bad[k] = v
	}
	_, err = editor.AddItem(ctx, "special_exceptions", bad)
	assert.ErrorIs(t, err, ErrInvalidCourtReference)
	assert.Empty(t, draft.SpecialExceptions)

	good := url.Values{"court": {"1"}}
	for k, v := range window {
		good[k] = v
	}
	items, err := editor.AddItem(ctx, "special_exceptions", good)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint64(1), items[0].CourtRef)
	assert.Equal(t, "Court 2", items[0].CourtName)
	assert.Equal(t, "resurfacing", items[0].Note)
}

func TestDeletingCourtReindexesSpecialExceptions(t *testing.T) {
	ctx := context.Background()
	editor, draft := draftEditor()

	for _, name := range []string{"Court 1", "Court 2", "Court 3"} {
		_, err := editor.AddItem(ctx, "courts", url.Values{"name": {name}})
		require.NoError(t, err)
	}
	add := func(court string) {
		_, err := editor.AddItem(ctx, "special_exceptions", url.Values{
			"court":      {court},
			"date":       {"2026-09-01"},
			"start_time": {"12:00"},
			"end_time":   {"14:00"},
		})
		require.NoError(t, err)
	}
	add("0")
	add("2")

	// Removing the first court drops its exception and shifts the
	// remaining reference down to the court's new position.
	_, err := editor.DeleteItem(ctx, "courts", ItemRef{Index: 0})
	require.NoError(t, err)

	require.Len(t, draft.SpecialExceptions, 1)
	assert.Equal(t, 1, draft.SpecialExceptions[0].CourtIndex)

	items, _, err := editor.ListItems(ctx, "special_exceptions")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Court 3", items[0].CourtName)
}

func TestSectionEditorListItemsIncludesCourtChoices(t *testing.T) {
	ctx := context.Background()
	editor, _ := draftEditor()

	_, err := editor.AddItem(ctx, "courts", url.Values{"name": {"Court 1"}})
	require.NoError(t, err)

	_, choices, err := editor.ListItems(ctx, "special_exceptions")
	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.Equal(t, uint64(0), choices[0].Ref)

	_, choices, err = editor.ListItems(ctx, "holiday_exceptions")
	require.NoError(t, err)
	assert.Nil(t, choices)
}

func TestHolidayExceptionValidation(t *testing.T) {
	ctx := context.Background()
	editor, _ := draftEditor()

	_, err := editor.AddItem(ctx, "holiday_exceptions", url.Values{
		"date":       {"2026-12-25"},
		"start_time": {"10:00"},
		"end_time":   {"08:00"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "start_time")

	items, err := editor.AddItem(ctx, "holiday_exceptions", url.Values{
		"date":       {"2026-12-25"},
		"start_time": {"00:00"},
		"end_time":   {"23:59"},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2026-12-25", items[0].Date)
}
