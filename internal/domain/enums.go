package domain

type ExemptionType string

const (
	ExemptionNone       ExemptionType = "none"
	ExemptionQualified  ExemptionType = "qualified"
	ExemptionCommercial ExemptionType = "commercial"
)

type RecordType string

const (
	RecordTraining RecordType = "training"
	RecordSoil     RecordType = "soil"
	RecordWater    RecordType = "water"
	RecordHarvest  RecordType = "harvest"
	RecordPlan     RecordType = "plan"
	RecordCleaning RecordType = "cleaning"
)

// ValidRecordTypes is the canonical set of accepted record type strings.
var ValidRecordTypes = map[string]bool{
	"training": true, "soil": true, "water": true,
	"harvest": true, "plan": true, "cleaning": true,
}
