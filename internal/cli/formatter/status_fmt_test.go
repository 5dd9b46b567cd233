package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amoreland/tiller/internal/contract"
	"github.com/amoreland/tiller/internal/domain"
)

func TestFormatStatus_Undetermined(t *testing.T) {
	out := FormatStatus(&contract.StatusView{Determined: false})
	assert.Contains(t, out, "Not yet determined")
	assert.Contains(t, out, "tiller check")
}

func TestFormatStatus_Determined(t *testing.T) {
	view := &contract.StatusView{
		Determined:    true,
		IsCovered:     false,
		IsExempt:      true,
		ExemptionType: domain.ExemptionQualified,
		OutcomeLabel:  "Eligible for a qualified exemption",
		AnnualSales:   "under_500k",
		Provisional:   true,
		Details:       map[string]string{"q1": "yes"},
		UpdatedAt:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	out := FormatStatus(view)
	assert.Contains(t, out, "EXEMPT")
	assert.Contains(t, out, "Eligible for a qualified exemption")
	assert.Contains(t, out, "provisional")
	assert.Contains(t, out, "qualified")
	assert.Contains(t, out, "under_500k")
	assert.Contains(t, out, "q1")
}
