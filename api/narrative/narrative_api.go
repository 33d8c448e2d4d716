package narrative

import (
	"context"
	"fmt"
	"strings"

	"trip-planner/models"
)

// NarrativeAPI defines the interface for the content generation service
type NarrativeAPI interface {
	Generate(ctx context.Context, prompt models.NarrativePrompt) (string, error)
}

// RenderPrompt turns the structured prompt into the instruction text sent to the model.
func RenderPrompt(p models.NarrativePrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a friendly, concise travel itinerary summary for a trip to %s.\n", p.Destination)
	if p.Companions != "" {
		fmt.Fprintf(&b, "Travelling with: %s.\n", p.Companions)
	}
	if p.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s.\n", p.Budget)
	}
	if p.WeatherSummary != "" {
		fmt.Fprintf(&b, "Weather forecast:\n%s\n", p.WeatherSummary)
	}
	b.WriteString("Day-by-day schedule:\n")
	b.WriteString(p.Schedule)
	b.WriteString("\nDescribe each day in a short paragraph and add one practical tip per day.")
	return b.String()
}
