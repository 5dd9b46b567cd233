package coverage

import "github.com/amoreland/tiller/internal/flow"

// ResultReasons returns the human-readable justifications for a terminal
// result, as a pure function of the accumulated answers and flags. Reasons
// are denormalized display text, not a re-derivation of the classification:
// the classification was already fixed when the session reached the result
// node, and this table only explains it.
//
// Every key yields a non-empty list; unknown keys fall back to a generic
// sentence, so an incomplete or hand-edited flow never renders an empty
// "why" section.
func ResultReasons(resultKey string, answers flow.Answers, flags flow.Flags) []string {
	switch resultKey {
	case "not_covered":
		if answers["q1"] == "no" {
			return []string{"You indicated the farm does not grow, harvest, pack, or hold produce."}
		}
		if answers["q2"] == "yes" {
			return []string{"You indicated average annual produce sales are $25,000 or less (3-year average)."}
		}
		return []string{"Your answers indicate the Produce Safety Rule does not apply."}
	case "rarely_consumed_raw":
		return []string{"You indicated the commodity is rarely consumed raw."}
	case "personal_consumption":
		return []string{"You indicated the produce is for personal or on-farm consumption."}
	case "processing_exemption":
		return []string{"You indicated the produce is intended for commercial processing with an adequate kill step."}
	case "qualified_exemption":
		return []string{"You indicated annual food sales are less than $500,000 and a majority of sales go to qualified end users."}
	case "covered":
		if flags["provisional"] {
			return []string{
				"You selected a provisional result because you were not sure about the qualified exemption test.",
				"Confirm your sales and buyer details to determine whether a qualified exemption applies.",
			}
		}
		return []string{"You indicated the farm does not meet the qualified exemption test based on your sales and buyers."}
	default:
		return []string{"Review your answers to confirm this result."}
	}
}
