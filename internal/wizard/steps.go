package wizard

// Step names the stages of the creation wizard in their fixed order.
type Step string

const (
	StepBookingPage      Step = "booking_page"
	StepCourts           Step = "courts"
	StepSlotDefinition   Step = "slot_definition"
	StepEquipmentOptions Step = "equipment_options"
	StepOpeningHourRules Step = "opening_hour_rules"
	StepSave             Step = "save"
)

// stepOrder is the wizard's step sequence. Navigation moves one
// position at a time; "save" is terminal.
var stepOrder = []Step{
	StepBookingPage,
	StepCourts,
	StepSlotDefinition,
	StepEquipmentOptions,
	StepOpeningHourRules,
	StepSave,
}

// Navigation directions accepted by NextStep.
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
)

// ParseStep validates a step name supplied by a client.
func ParseStep(s string) (Step, error) {
	for _, st := range stepOrder {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStep
}

// NextStep computes the step one position away from current in the
// given direction. Moves past either end of the sequence clamp to the
// boundary step; there is no wraparound. Unknown steps or directions
// return ErrInvalidStep.
func NextStep(current Step, direction string) (Step, error) {
	idx := -1
	for i, st := range stepOrder {
		if st == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", ErrInvalidStep
	}
	switch direction {
	case DirectionNext:
		idx++
	case DirectionPrevious:
		idx--
	default:
		return "", ErrInvalidStep
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stepOrder) {
		idx = len(stepOrder) - 1
	}
	return stepOrder[idx], nil
}
