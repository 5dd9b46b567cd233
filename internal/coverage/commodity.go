package coverage

// YesNo is a binary answer to a commodity sub-flow question. The empty
// string means unanswered.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// YesNoUnsure extends YesNo with the "not sure" escape hatch used by the
// qualified exemption question.
type YesNoUnsure string

const (
	AnswerYes     YesNoUnsure = "yes"
	AnswerNo      YesNoUnsure = "no"
	AnswerNotSure YesNoUnsure = "not_sure"
)

// CommodityOutcome classifies a single commodity after its three-question
// sub-flow. The empty value means no exclusion or exemption was identified
// and the commodity falls through to the top-level determination.
type CommodityOutcome string

const (
	CommodityNone             CommodityOutcome = ""
	CommodityRarelyRaw        CommodityOutcome = "not_covered_rarely"
	CommodityPersonalUse      CommodityOutcome = "not_covered_personal"
	CommodityProcessingExempt CommodityOutcome = "eligible_exemption_processing"
)

// commodityOutcomeLabels maps per-commodity outcomes to display text.
var commodityOutcomeLabels = map[CommodityOutcome]string{
	CommodityRarelyRaw:        "Not covered (rarely consumed raw)",
	CommodityPersonalUse:      "Not covered (personal/on-farm consumption)",
	CommodityProcessingExempt: "Eligible for processing exemption (kill step)",
}

// Label returns display text for a resolved commodity outcome, or an empty
// string for the unresolved outcome.
func (o CommodityOutcome) Label() string { return commodityOutcomeLabels[o] }

// Excluded reports whether the outcome removes the commodity from coverage
// entirely (as opposed to exempting it conditionally).
func (o CommodityOutcome) Excluded() bool {
	return o == CommodityRarelyRaw || o == CommodityPersonalUse
}

// Commodity is one produce item passing through the three-question
// sub-flow. Outcome and Reason are derived by Resolve and empty until all
// relevant answers are present.
type Commodity struct {
	ID                 string
	Name               string
	RarelyConsumedRaw  YesNo
	PersonalUse        YesNo
	ProcessingKillStep YesNo
	Outcome            CommodityOutcome
	Reason             string
}

// Resolve computes the commodity's own outcome by first-match priority:
// rarely-consumed-raw wins over personal use, which wins over the
// processing exemption. A commodity with all three answered "no" resolves
// to no outcome and falls through to the top-level determination.
func (c Commodity) Resolve() Commodity {
	switch {
	case c.RarelyConsumedRaw == Yes:
		c.Outcome = CommodityRarelyRaw
		c.Reason = "This commodity is on the FDA list of produce rarely consumed raw."
	case c.PersonalUse == Yes:
		c.Outcome = CommodityPersonalUse
		c.Reason = "This produce is for personal/on-farm consumption."
	case c.ProcessingKillStep == Yes:
		c.Outcome = CommodityProcessingExempt
		c.Reason = "This produce is intended for commercial processing that adequately reduces pathogens (a kill step)."
	default:
		c.Outcome = CommodityNone
		c.Reason = ""
	}
	return c
}

// Answered reports whether every sub-flow question has an answer.
func (c Commodity) Answered() bool {
	return c.RarelyConsumedRaw != "" && c.PersonalUse != "" && c.ProcessingKillStep != ""
}

// ResolveAll returns a copy of the slice with every commodity resolved.
func ResolveAll(commodities []Commodity) []Commodity {
	out := make([]Commodity, len(commodities))
	for i, c := range commodities {
		out[i] = c.Resolve()
	}
	return out
}

// AllExcluded reports whether every commodity resolved to a hard exclusion
// (rarely consumed raw or personal use). False for an empty slice.
func AllExcluded(commodities []Commodity) bool {
	if len(commodities) == 0 {
		return false
	}
	for _, c := range commodities {
		if !c.Outcome.Excluded() {
			return false
		}
	}
	return true
}

// AllExcludedOrProcessing reports whether every commodity is either
// excluded or processing-exempt. False for an empty slice.
func AllExcludedOrProcessing(commodities []Commodity) bool {
	if len(commodities) == 0 {
		return false
	}
	for _, c := range commodities {
		if !c.Outcome.Excluded() && c.Outcome != CommodityProcessingExempt {
			return false
		}
	}
	return true
}

// AnyProcessingExempt reports whether at least one commodity resolved to
// the processing exemption.
func AnyProcessingExempt(commodities []Commodity) bool {
	for _, c := range commodities {
		if c.Outcome == CommodityProcessingExempt {
			return true
		}
	}
	return false
}
