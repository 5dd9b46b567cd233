package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoreland/tiller/internal/coverage"
	"github.com/amoreland/tiller/internal/teatest"
)

func newCheckDriver(t *testing.T, commodities []coverage.Commodity) *teatest.Driver {
	t.Helper()
	def, err := coverage.LoadFlow()
	require.NoError(t, err)
	d := teatest.New(t, newCheckModel(def, commodities), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func model(d *teatest.Driver) *checkModel {
	return d.Model.(*checkModel)
}

// answerNo selects the second option (No) on the current question.
func answerNo(d *teatest.Driver) {
	d.PressDown()
	d.PressEnter()
}

func TestCheckWizard_StartsAtIntro(t *testing.T) {
	d := newCheckDriver(t, nil)

	assert.Contains(t, d.View(), "FSMA Produce Safety Rule Coverage Checker")
	assert.Contains(t, d.View(), "Start the coverage check")
	assert.NotContains(t, d.View(), "b back", "back is hidden before any navigation")
}

func TestCheckWizard_HappyPathToCovered(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressEnter() // intro -> q1
	assert.Contains(t, d.View(), "Step 1 of 6")

	d.PressEnter() // q1: yes -> q2
	answerNo(d)    // q2: more than $25k -> q3
	answerNo(d)    // q3: not rarely raw -> q4
	answerNo(d)    // q4: not personal -> q5
	answerNo(d)    // q5: no kill step -> q6
	answerNo(d)    // q6: no -> covered

	view := d.View()
	assert.Contains(t, view, "Covered by the Produce Safety Rule")
	assert.Contains(t, view, "save this result")

	m := model(d)
	sum := m.Summary()
	require.True(t, sum.Complete)
	assert.Equal(t, "covered", sum.ResultKey)
	assert.False(t, sum.Provisional)

	d.PressEnter() // confirm save and quit
	assert.True(t, d.Quitting)
	assert.True(t, m.save)
	assert.False(t, m.aborted)
}

func TestCheckWizard_NoProduceShortCircuits(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressEnter() // intro
	answerNo(d)    // q1: no -> not covered

	sum := model(d).Summary()
	require.True(t, sum.Complete)
	assert.Equal(t, "not_covered", sum.ResultKey)
	assert.Contains(t, d.View(), "does not apply")
}

func TestCheckWizard_NotSureHelperGrantsProvisional(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressEnter() // intro
	d.PressEnter() // q1 yes
	answerNo(d)    // q2
	answerNo(d)    // q3
	answerNo(d)    // q4
	answerNo(d)    // q5

	// q6: select "Not sure" (third option).
	d.PressDown()
	d.PressDown()
	d.PressEnter()
	assert.Contains(t, d.View(), "what you need to confirm")

	// Take "Continue anyway".
	d.PressDown()
	d.PressEnter()

	m := model(d)
	sum := m.Summary()
	require.True(t, sum.Complete)
	assert.Equal(t, "covered", sum.ResultKey)
	assert.True(t, sum.Provisional)
	assert.True(t, m.session.Flag("provisional"))

	value, ok := m.session.Answer("q6")
	require.True(t, ok)
	assert.Equal(t, "not_sure", value)
}

func TestCheckWizard_HelperGoBackReturnsToQuestion(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressEnter()
	d.PressEnter()
	answerNo(d)
	answerNo(d)
	answerNo(d)
	answerNo(d)

	d.PressDown()
	d.PressDown()
	d.PressEnter() // q6 -> helper

	d.PressEnter() // "Go back and answer" (first action)

	m := model(d)
	assert.Equal(t, "q6", m.session.CurrentNodeID())
	assert.False(t, m.session.Flag("provisional"))
}

func TestCheckWizard_BackRestoresPriorQuestionAndCursor(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressEnter() // intro -> q1
	d.PressEnter() // q1: yes -> q2

	d.PressKey('b')

	m := model(d)
	assert.Equal(t, "q1", m.session.CurrentNodeID())
	// Cursor lands on the previously selected option.
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, d.View(), "b back")
}

func TestCheckWizard_RestartResetsEverything(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressEnter()
	d.PressEnter()
	answerNo(d)

	d.PressKey('r')

	m := model(d)
	assert.Equal(t, "intro", m.session.CurrentNodeID())
	assert.False(t, m.session.CanGoBack())
	assert.Empty(t, m.session.Answers())
}

func TestCheckWizard_QuitBeforeResultAborts(t *testing.T) {
	d := newCheckDriver(t, nil)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.True(t, model(d).aborted)
}

func TestCheckWizard_CommodityWalkAggregatesProcessingExemption(t *testing.T) {
	commodities := []coverage.Commodity{
		{ID: "c1", Name: "potatoes"},
		{ID: "c2", Name: "apples"},
	}
	d := newCheckDriver(t, commodities)

	d.PressEnter() // intro
	d.PressEnter() // q1 yes
	answerNo(d)    // q2 no -> commodity walk

	view := d.View()
	assert.Contains(t, view, "Commodity 1 of 2")
	assert.Contains(t, view, "potatoes")

	// potatoes: rarely raw.
	d.PressEnter() // rarely raw: yes
	answerNo(d)    // personal: no
	answerNo(d)    // kill step: no

	assert.Contains(t, d.View(), "Commodity 2 of 2")
	assert.Contains(t, d.View(), "apples")

	// apples: commercial processing with a kill step.
	answerNo(d)    // rarely raw: no
	answerNo(d)    // personal: no
	d.PressEnter() // kill step: yes

	m := model(d)
	sum := m.Summary()
	require.True(t, sum.Complete)
	assert.Equal(t, "processing_exemption", sum.ResultKey)
	require.Len(t, sum.Commodities, 2)
	assert.Equal(t, "potatoes", sum.Commodities[0].Name)
	assert.Contains(t, sum.Commodities[0].Outcome, "rarely consumed raw")
	assert.Contains(t, sum.Commodities[1].Outcome, "processing exemption")
}

func TestCheckWizard_CommodityFallThroughResumesAtExemptionTest(t *testing.T) {
	commodities := []coverage.Commodity{{ID: "c1", Name: "leafy greens"}}
	d := newCheckDriver(t, commodities)

	d.PressEnter() // intro
	d.PressEnter() // q1 yes
	answerNo(d)    // q2 no -> walk

	answerNo(d) // rarely raw: no
	answerNo(d) // personal: no
	answerNo(d) // kill step: no

	m := model(d)
	assert.Equal(t, modeFlow, m.mode)
	assert.Equal(t, "q6", m.session.CurrentNodeID())
	assert.Contains(t, d.View(), "qualified exemption")
}

func TestCheckWizard_CommodityBackCrossesBoundary(t *testing.T) {
	commodities := []coverage.Commodity{
		{ID: "c1", Name: "potatoes"},
		{ID: "c2", Name: "apples"},
	}
	d := newCheckDriver(t, commodities)

	d.PressEnter() // intro
	d.PressEnter() // q1 yes
	answerNo(d)    // q2 -> walk

	// Answer all of potatoes, land on apples' first question.
	d.PressEnter()
	answerNo(d)
	answerNo(d)
	assert.Contains(t, d.View(), "Commodity 2 of 2")

	// Back crosses into potatoes' last question.
	d.PressKey('b')
	view := d.View()
	assert.Contains(t, view, "Commodity 1 of 2")
	assert.Contains(t, view, "commercial processing")
}

func TestCheckWizard_CommodityBackOutExitsToSalesQuestion(t *testing.T) {
	commodities := []coverage.Commodity{{ID: "c1", Name: "potatoes"}}
	d := newCheckDriver(t, commodities)

	d.PressEnter() // intro
	d.PressEnter() // q1 yes
	answerNo(d)    // q2 -> walk
	assert.Contains(t, d.View(), "Commodity 1 of 1")

	d.PressKey('b')

	m := model(d)
	assert.Equal(t, modeFlow, m.mode)
	assert.Equal(t, "q2", m.session.CurrentNodeID())
}

func TestCheckWizard_BackIntoCommodityWalkFromExemptionTest(t *testing.T) {
	commodities := []coverage.Commodity{{ID: "c1", Name: "leafy greens"}}
	d := newCheckDriver(t, commodities)

	d.PressEnter() // intro
	d.PressEnter() // q1 yes
	answerNo(d)    // q2 -> walk
	answerNo(d)    // rarely raw
	answerNo(d)    // personal
	answerNo(d)    // kill step -> q6

	d.PressKey('b')

	m := model(d)
	assert.Equal(t, modeCommodity, m.mode)
	assert.Contains(t, d.View(), "commercial processing")
}
