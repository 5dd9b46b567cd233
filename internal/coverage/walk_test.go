package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommodityWalk_SingleCommodityForward(t *testing.T) {
	w := NewCommodityWalk([]Commodity{{ID: "1", Name: "lettuce"}})

	c, step := w.Current()
	assert.Equal(t, "lettuce", c.Name)
	assert.Equal(t, StepRarelyRaw, step)

	w.Answer(No)
	assert.Equal(t, MoveStep, w.Next())
	_, step = w.Current()
	assert.Equal(t, StepPersonalUse, step)

	w.Answer(No)
	assert.Equal(t, MoveStep, w.Next())
	_, step = w.Current()
	assert.Equal(t, StepKillStep, step)

	w.Answer(Yes)
	assert.Equal(t, MoveExit, w.Next(), "after the last commodity's third question the sub-flow is done")

	resolved := w.Commodities()
	require.Len(t, resolved, 1)
	assert.Equal(t, CommodityProcessingExempt, resolved[0].Outcome)
}

func TestCommodityWalk_LoopsToNextCommodity(t *testing.T) {
	w := NewCommodityWalk([]Commodity{
		{ID: "1", Name: "potatoes"},
		{ID: "2", Name: "lettuce"},
	})

	w.Answer(Yes)
	w.Next()
	w.Answer(No)
	w.Next()
	w.Answer(No)
	assert.Equal(t, MoveCommodity, w.Next(), "more commodities remain: loop to the next one's first question")

	c, step := w.Current()
	assert.Equal(t, "lettuce", c.Name)
	assert.Equal(t, StepRarelyRaw, step)

	// First commodity already resolved.
	assert.Equal(t, CommodityRarelyRaw, w.Commodities()[0].Outcome)
}

func TestCommodityWalk_BackWithinCommodity(t *testing.T) {
	w := NewCommodityWalk([]Commodity{{ID: "1", Name: "lettuce"}})
	w.Answer(No)
	w.Next()

	assert.Equal(t, MoveStep, w.Back())
	_, step := w.Current()
	assert.Equal(t, StepRarelyRaw, step)
}

func TestCommodityWalk_BackAcrossCommodityBoundary(t *testing.T) {
	w := NewCommodityWalk([]Commodity{
		{ID: "1", Name: "potatoes"},
		{ID: "2", Name: "lettuce"},
	})

	// Finish the first commodity.
	w.Answer(No)
	w.Next()
	w.Answer(No)
	w.Next()
	w.Answer(No)
	require.Equal(t, MoveCommodity, w.Next())

	// Back from the second commodity's first question lands on the
	// previous commodity's third question.
	assert.Equal(t, MoveCommodity, w.Back())
	c, step := w.Current()
	assert.Equal(t, "potatoes", c.Name)
	assert.Equal(t, StepKillStep, step)
}

func TestCommodityWalk_BackFromFirstQuestionExits(t *testing.T) {
	w := NewCommodityWalk([]Commodity{{ID: "1", Name: "lettuce"}})

	assert.Equal(t, MoveExit, w.Back(), "back from the very first sub-question returns to the commodity list editor")
}

func TestCommodityWalk_AnswersLandOnActiveCommodity(t *testing.T) {
	w := NewCommodityWalk([]Commodity{
		{ID: "1", Name: "potatoes"},
		{ID: "2", Name: "lettuce"},
	})

	w.Answer(Yes)
	w.Next()
	w.Answer(No)
	w.Next()
	w.Answer(No)
	w.Next()
	w.Answer(No)

	cs := w.Commodities()
	assert.Equal(t, Yes, cs[0].RarelyConsumedRaw)
	assert.Equal(t, No, cs[1].RarelyConsumedRaw)
	assert.Equal(t, YesNo(""), cs[1].PersonalUse)
}

func TestWalkStep_Question(t *testing.T) {
	assert.Contains(t, StepRarelyRaw.Question("kale"), "kale")
	assert.Contains(t, StepPersonalUse.Question("kale"), "personal")
	assert.Contains(t, StepKillStep.Question("kale"), "kill step")
}

func TestResolveCommodity_FirstMatchPriority(t *testing.T) {
	// Rarely-raw wins even when later answers are also yes.
	c := commodity("c", Yes, Yes, Yes).Resolve()
	assert.Equal(t, CommodityRarelyRaw, c.Outcome)

	c = commodity("c", No, Yes, Yes).Resolve()
	assert.Equal(t, CommodityPersonalUse, c.Outcome)

	c = commodity("c", No, No, Yes).Resolve()
	assert.Equal(t, CommodityProcessingExempt, c.Outcome)

	c = commodity("c", No, No, No).Resolve()
	assert.Equal(t, CommodityNone, c.Outcome)
	assert.Empty(t, c.Reason)
}

func TestCommodityAggregates_EmptySlice(t *testing.T) {
	assert.False(t, AllExcluded(nil))
	assert.False(t, AllExcludedOrProcessing(nil))
	assert.False(t, AnyProcessingExempt(nil))
}
