package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	for _, name := range []string{"booking_page", "courts", "slot_definition", "equipment_options", "opening_hour_rules", "save"} {
		step, err := ParseStep(name)
		require.NoError(t, err)
		assert.Equal(t, Step(name), step)
	}

	_, err := ParseStep("payments")
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = ParseStep("")
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestNextStepMovesOnePosition(t *testing.T) {
	step, err := NextStep(StepBookingPage, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, StepCourts, step)

	step, err = NextStep(StepSlotDefinition, DirectionPrevious)
	require.NoError(t, err)
	assert.Equal(t, StepCourts, step)

	step, err = NextStep(StepOpeningHourRules, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, StepSave, step)
}

func TestNextStepClampsAtBoundaries(t *testing.T) {
	// No wraparound: moving past either end stays on the boundary step.
	step, err := NextStep(StepBookingPage, DirectionPrevious)
	require.NoError(t, err)
	assert.Equal(t, StepBookingPage, step)

	step, err = NextStep(StepSave, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, StepSave, step)
}

func TestNextStepRejectsUnknownInput(t *testing.T) {
	_, err := NextStep(Step("waitlist"), DirectionNext)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = NextStep(StepCourts, "sideways")
	assert.ErrorIs(t, err, ErrInvalidStep)
}
