package models

// PlanRequest is the input of a single itinerary build.
type PlanRequest struct {
	Destination   string   `json:"destination"`
	StartLocation string   `json:"start_location,omitempty"`
	Activities    []string `json:"activities"`
	TravelDays    int      `json:"travel_days"`
	Companions    string   `json:"companions,omitempty"`
	Budget        string   `json:"budget,omitempty"`
}

// NarrativePrompt is the structured data handed to the content generation service.
type NarrativePrompt struct {
	Destination    string
	Schedule       string
	Companions     string
	Budget         string
	WeatherSummary string
}
