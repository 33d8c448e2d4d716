package narrative

import (
	"context"
	"fmt"

	"trip-planner/models"
)

// NarrativeApiClientMock returns a canned summary without calling a model
type NarrativeApiClientMock struct{}

func NewNarrativeApiClientMock() *NarrativeApiClientMock {
	return &NarrativeApiClientMock{}
}

func (c *NarrativeApiClientMock) Generate(ctx context.Context, prompt models.NarrativePrompt) (string, error) {
	return fmt.Sprintf("Your trip to %s is ready. Enjoy every stop!", prompt.Destination), nil
}
