package coverage

// OutcomeType is the terminal classification of the coverage determination.
type OutcomeType string

const (
	OutcomeNotCoveredFarm      OutcomeType = "not_covered_farm"
	OutcomeNotCoveredSales     OutcomeType = "not_covered_sales"
	OutcomeProcessingExemption OutcomeType = "eligible_exemption_processing"
	OutcomeQualifiedExemption  OutcomeType = "qualified_exemption"
	OutcomeCovered             OutcomeType = "covered"
)

var outcomeLabels = map[OutcomeType]string{
	OutcomeNotCoveredFarm:      "Not covered by the Produce Safety Rule",
	OutcomeNotCoveredSales:     "Not covered by the Produce Safety Rule",
	OutcomeProcessingExemption: "Eligible for exemption (commercial processing with an adequate kill step)",
	OutcomeQualifiedExemption:  "Eligible for a qualified exemption (modified requirements + documentation)",
	OutcomeCovered:             "Covered by the Produce Safety Rule",
}

// Label returns the display label for the outcome type.
func (t OutcomeType) Label() string { return outcomeLabels[t] }

// Covered reports whether the outcome means the rule applies in full.
func (t OutcomeType) Covered() bool { return t == OutcomeCovered }

// Exempt reports whether the outcome is an exemption (as opposed to
// non-coverage or full coverage).
func (t OutcomeType) Exempt() bool {
	return t == OutcomeProcessingExemption || t == OutcomeQualifiedExemption
}

// Outcome is a terminal classification plus its justification.
type Outcome struct {
	Type        OutcomeType
	Reason      string
	Provisional bool
}

// Input is the complete answer set feeding the top-level determination.
// Commodities should already carry answers; Evaluate resolves them.
type Input struct {
	GrowsProduce    YesNo       // q1: grows, harvests, packs, or holds produce
	UnderSalesFloor YesNo       // q2: average annual produce sales of $25k or less
	Commodities     []Commodity // per-commodity sub-flow answers
	QualifiedExempt YesNoUnsure // q6: qualified exemption test
	Provisional     bool        // "continue anyway" taken after a not-sure q6
}

// Evaluate runs the top-level rule chain. The guards are order-sensitive
// and not independently exhaustive (the processing-exemption and
// all-excluded cases share the q1=yes, q2=no prefix and differ only in
// whether any commodity is processing-exempt), so the chain must be
// evaluated exactly in this order. The second return is false when the
// answers on hand cannot yet produce an outcome; presentation layers render
// an "incomplete" message for that case rather than an error.
func Evaluate(in Input) (Outcome, bool) {
	resolved := ResolveAll(in.Commodities)

	if in.GrowsProduce == No {
		return Outcome{
			Type:   OutcomeNotCoveredFarm,
			Reason: "Your farm does not grow, harvest, pack, or hold produce.",
		}, true
	}

	if in.GrowsProduce == Yes && in.UnderSalesFloor == Yes {
		return Outcome{
			Type:   OutcomeNotCoveredSales,
			Reason: "Your average annual produce sales are $25,000 or less.",
		}, true
	}

	if in.GrowsProduce == Yes && in.UnderSalesFloor == No &&
		AllExcludedOrProcessing(resolved) && AnyProcessingExempt(resolved) {
		return Outcome{
			Type:   OutcomeProcessingExemption,
			Reason: "All commodities are either excluded or intended for commercial processing with an adequate kill step.",
		}, true
	}

	if in.GrowsProduce == Yes && in.UnderSalesFloor == No && AllExcluded(resolved) {
		return Outcome{
			Type:   OutcomeNotCoveredFarm,
			Reason: "All commodities are excluded (rarely consumed raw or personal/on-farm consumption).",
		}, true
	}

	if in.QualifiedExempt == AnswerYes {
		return Outcome{
			Type:   OutcomeQualifiedExemption,
			Reason: "Your farm reports less than $500,000 in annual food sales and a majority of sales directly to qualified end-users.",
		}, true
	}

	if in.QualifiedExempt == AnswerNo {
		return Outcome{
			Type:   OutcomeCovered,
			Reason: "You did not meet the qualified exemption test based on the information provided.",
		}, true
	}

	if in.QualifiedExempt == AnswerNotSure && in.Provisional {
		return Outcome{
			Type:        OutcomeCovered,
			Reason:      "Provisional result based on a not-sure response to the qualified exemption test.",
			Provisional: true,
		}, true
	}

	return Outcome{}, false
}
