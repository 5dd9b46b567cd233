package coverage

import "github.com/amoreland/tiller/internal/flow"

// OutcomeTypeForResult maps a flow result key to the persisted outcome
// classification. The shared "not_covered" result splits on which answer
// drove it: a q2 "yes" means the sales floor, anything else means the farm
// itself (no produce, or every commodity excluded).
func OutcomeTypeForResult(resultKey string, answers flow.Answers) (OutcomeType, bool) {
	switch resultKey {
	case "not_covered":
		if answers["q2"] == "yes" {
			return OutcomeNotCoveredSales, true
		}
		return OutcomeNotCoveredFarm, true
	case "rarely_consumed_raw", "personal_consumption":
		return OutcomeNotCoveredFarm, true
	case "processing_exemption":
		return OutcomeProcessingExemption, true
	case "qualified_exemption":
		return OutcomeQualifiedExemption, true
	case "covered":
		return OutcomeCovered, true
	}
	return "", false
}
