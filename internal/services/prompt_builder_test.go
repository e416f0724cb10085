package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationPrompt(t *testing.T) {
	prompt := GenerationPrompt("Lisbon", "4", "seafood")

	assert.True(t, strings.HasPrefix(prompt, "Create a 4-day travel itinerary for Lisbon focused on seafood."))
	assert.Contains(t, prompt, "exactly 3 to 4 real-world places")
	assert.True(t, strings.HasSuffix(prompt, "Format strictly like:\nDay 1:\n- Place One (description)\n- Place Two (description)\n..."))

	// The format example in the prompt is itself parseable.
	example := prompt[strings.Index(prompt, "Day 1:"):]
	places, ok := ParseItinerary(example).Places("Day 1")
	assert.True(t, ok)
	assert.Equal(t, []string{"Place One (description)", "Place Two (description)"}, places)
}

func TestRefinementPrompt(t *testing.T) {
	prompt := RefinementPrompt("Day 1:\n- A", "more museums")

	assert.Equal(t,
		"Here is a travel itinerary:\nDay 1:\n- A\n\nUser feedback: more museums\n"+
			"Update the itinerary accordingly with bullet format and short place descriptions.",
		prompt)
}

func TestCostPrompt(t *testing.T) {
	prompt := CostPrompt("Day 1:\n- A", "Rome", "2", "history")

	assert.True(t, strings.HasPrefix(prompt,
		"Break down the estimated travel costs in USD per day for the following itinerary to Rome for 2 days, focused on history."))
	for _, want := range []string{"accommodation, food, entry fees, local transport", "- Entry Fees: $xx", "Grand Total: $XXX"} {
		assert.Contains(t, prompt, want)
	}
	assert.True(t, strings.HasSuffix(prompt, "Itinerary:\nDay 1:\n- A"))
}
