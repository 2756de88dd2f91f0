package planner

import (
	"errors"

	"meal-plan-generator/internal/recipe"
)

// ErrNoSuitableRecipes matches NoSuitableRecipesError with errors.Is.
var ErrNoSuitableRecipes = errors.New("no suitable recipes")

// NoSuitableRecipesError is returned when no catalog recipe passes the
// household's constraints. Retrying with the same input cannot succeed.
type NoSuitableRecipesError struct {
	Filters recipe.Constraints
}

func (e *NoSuitableRecipesError) Error() string {
	return "No suitable recipes found for your criteria. Try allowing more cooking time, " +
		"choosing a different skill level, or relaxing dietary restrictions and allergies."
}

func (e *NoSuitableRecipesError) Is(target error) bool {
	return target == ErrNoSuitableRecipes
}
