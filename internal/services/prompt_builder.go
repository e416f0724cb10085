package services

import "fmt"

const (
	PlannerSystemPrompt = "You are a helpful travel planner."
	BudgetSystemPrompt  = "You are a travel budget planner."
)

// GenerationPrompt asks for a day-labelled, bulleted itinerary that
// ParseItinerary can read back.
func GenerationPrompt(destination, days, interest string) string {
	return fmt.Sprintf(
		"Create a %s-day travel itinerary for %s focused on %s. "+
			"For each day, list exactly 3 to 4 real-world places in bullet point format with 1-line descriptions. "+
			"Format strictly like:\nDay 1:\n- Place One (description)\n- Place Two (description)\n...",
		days, destination, interest,
	)
}

func RefinementPrompt(priorItinerary, feedback string) string {
	return fmt.Sprintf(
		"Here is a travel itinerary:\n%s\n\nUser feedback: %s\n"+
			"Update the itinerary accordingly with bullet format and short place descriptions.",
		priorItinerary, feedback,
	)
}

// CostPrompt asks for a per-day breakdown in four fixed categories plus a
// grand total. The answer is shown verbatim and never parsed.
func CostPrompt(itineraryText, destination, days, interest string) string {
	return fmt.Sprintf(
		"Break down the estimated travel costs in USD per day for the following itinerary to %s "+
			"for %s days, focused on %s. For each day, give estimated costs for: accommodation, food, entry fees, local transport. "+
			"At the end, include a total cost for the entire trip. Format strictly like:\n"+
			"Day 1:\n- Accommodation: $xx\n- Food: $xx\n- Entry Fees: $xx\n- Transport: $xx\n- Total: $xx\n...\n"+
			"Grand Total: $XXX\n\n"+
			"Itinerary:\n%s",
		destination, days, interest, itineraryText,
	)
}
