// Package motivation produces the short encouragement message shown on the
// dashboard, tailored to a profile's element and goal progress. The text
// itself comes from an external generative backend; this package owns input
// validation and the prompt, nothing else.
package motivation

import (
	"context"
	"fmt"

	"github.com/nelld28/chorebender/internal/model"
)

// Generator produces one motivational message for an element and a progress
// percentage. A failed call is terminal for that invocation; callers report
// the error and do not retry.
type Generator interface {
	Generate(ctx context.Context, element model.Element, progressPercentage float64) (string, error)
}

// ValidateInput checks the request shape before any backend call.
func ValidateInput(element string, progressPercentage float64) (model.Element, error) {
	e, err := model.ParseElement(element)
	if err != nil {
		return "", fmt.Errorf("element must be one of air, water, earth, fire")
	}
	if progressPercentage < 0 || progressPercentage > 100 {
		return "", fmt.Errorf("progress_percentage must be between 0 and 100")
	}
	return e, nil
}

// buildPrompt renders the generation prompt for the backend.
func buildPrompt(element model.Element, progressPercentage float64) string {
	return fmt.Sprintf(`You are a motivational bot that provides encouragement to users based on their elemental affinity and progress.

Element: %s
Progress: %.0f%%

Generate a motivational message tailored to the user's element and progress. The message should be no more than 2 sentences.

Example messages:
- Air (25%%): "The winds of change are with you. Keep soaring towards your goals!"
- Water (50%%): "Like water, adapt and flow. You're halfway there, keep going!"
- Earth (75%%): "Stay grounded and keep building. You're almost at the finish line!"
- Fire (100%%): "Your inner fire burns bright! You've achieved your goal!"
`, element, progressPercentage)
}
