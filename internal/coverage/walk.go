package coverage

// WalkStep is the inner cursor of the commodity sub-flow: the three
// questions asked for each commodity, in fixed order.
type WalkStep int

const (
	StepRarelyRaw WalkStep = iota
	StepPersonalUse
	StepKillStep
)

// Question returns the prompt text for the step, addressed to the named
// commodity.
func (s WalkStep) Question(name string) string {
	switch s {
	case StepRarelyRaw:
		return "Is " + name + " rarely consumed raw?"
	case StepPersonalUse:
		return "Is " + name + " for personal or on-farm consumption?"
	case StepKillStep:
		return "Is " + name + " intended for commercial processing with a kill step?"
	default:
		return ""
	}
}

// WalkMove describes what a Next or Back transition did, so the caller can
// route presentation accordingly.
type WalkMove int

const (
	// MoveStep stayed within the same commodity.
	MoveStep WalkMove = iota
	// MoveCommodity crossed to an adjacent commodity.
	MoveCommodity
	// MoveExit left the sub-flow: past the last commodity on Next, or back
	// out to the commodity list editor on Back.
	MoveExit
)

// CommodityWalk is the nested state machine driving the per-commodity
// sub-flow: an outer commodity index plus an inner question step. Modeling
// the two cursors explicitly keeps the cross-commodity boundary transitions
// (notably backing into the previous commodity's last question) structurally
// obvious.
type CommodityWalk struct {
	commodities []Commodity
	index       int
	step        WalkStep
}

// NewCommodityWalk starts a walk at the first commodity's first question.
// The slice is copied; resolved results are read back via Commodities.
func NewCommodityWalk(commodities []Commodity) *CommodityWalk {
	cs := make([]Commodity, len(commodities))
	copy(cs, commodities)
	return &CommodityWalk{commodities: cs}
}

// Current returns the active commodity and inner step.
func (w *CommodityWalk) Current() (Commodity, WalkStep) {
	return w.commodities[w.index], w.step
}

// Index returns the outer commodity cursor.
func (w *CommodityWalk) Index() int { return w.index }

// Len returns the number of commodities in the walk.
func (w *CommodityWalk) Len() int { return len(w.commodities) }

// Commodities returns a copy of the walk's commodities, resolved so far.
func (w *CommodityWalk) Commodities() []Commodity {
	out := make([]Commodity, len(w.commodities))
	copy(out, w.commodities)
	return out
}

// Answer records the active commodity's answer for the current step.
func (w *CommodityWalk) Answer(v YesNo) {
	c := &w.commodities[w.index]
	switch w.step {
	case StepRarelyRaw:
		c.RarelyConsumedRaw = v
	case StepPersonalUse:
		c.PersonalUse = v
	case StepKillStep:
		c.ProcessingKillStep = v
	}
}

// Next advances the walk. After the third question the active commodity is
// resolved; if more commodities remain the walk loops back to the first
// question for the next one (MoveCommodity), otherwise the sub-flow is
// complete (MoveExit) and the caller proceeds to the next top-level
// question.
func (w *CommodityWalk) Next() WalkMove {
	if w.step < StepKillStep {
		w.step++
		return MoveStep
	}

	w.commodities[w.index] = w.commodities[w.index].Resolve()

	if w.index < len(w.commodities)-1 {
		w.index++
		w.step = StepRarelyRaw
		return MoveCommodity
	}
	return MoveExit
}

// Back retreats the walk. From a commodity's first question it crosses into
// the previous commodity's third question (MoveCommodity), or exits to the
// commodity list editor when already at the first commodity (MoveExit).
func (w *CommodityWalk) Back() WalkMove {
	if w.step > StepRarelyRaw {
		w.step--
		return MoveStep
	}

	if w.index > 0 {
		w.index--
		w.step = StepKillStep
		return MoveCommodity
	}
	return MoveExit
}
