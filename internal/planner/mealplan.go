package planner

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"meal-plan-generator/internal/recipe"
	"meal-plan-generator/internal/shopping"
	"meal-plan-generator/internal/tips"
)

var validate = validator.New()

// MealPlanInput is the household profile a plan is generated for.
type MealPlanInput struct {
	recipe.Constraints
	FamilySize int `json:"familySize" validate:"gte=1"`
	Children   int `json:"children" validate:"gte=0"`
}

// Validate checks the profile at a trust boundary such as the CLI.
// GenerateMealPlan does not call it.
func (in MealPlanInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid meal plan input: %w", err)
	}
	return nil
}

// GeneratedMeal is one day of a plan, scaled to the household.
type GeneratedMeal struct {
	ID              string                    `json:"id"`
	Day             int                       `json:"day"`
	RecipeID        string                    `json:"recipeId"`
	Name            string                    `json:"name"`
	Description     string                    `json:"description"`
	PrepTime        int                       `json:"prepTime"`
	CookTime        int                       `json:"cookTime"`
	TotalTime       int                       `json:"totalTime"`
	Servings        int                       `json:"servings"`
	Difficulty      recipe.Difficulty         `json:"difficulty"`
	Category        recipe.Category           `json:"category"`
	Ingredients     []recipe.PricedIngredient `json:"ingredients"`
	Instructions    []string                  `json:"instructions"`
	WhyItWorks      string                    `json:"whyItWorks"`
	KidFriendlyTips []string                  `json:"kidFriendlyTips"`
	LeftoverIdeas   []string                  `json:"leftoverIdeas"`
	Tags            []string                  `json:"tags"`
	EstimatedCost   float64                   `json:"estimatedCost"`
}

// TipIDs records which tips were chosen, independent of their wording.
type TipIDs struct {
	PrepAhead  []tips.ID `json:"prepAhead"`
	TimeSaving []tips.ID `json:"timeSaving"`
	Budget     []tips.ID `json:"budget"`
	PickyEater []tips.ID `json:"pickyEater"`
}

// MealPlanResult is everything produced for one request. Nothing in it is
// shared with other results.
type MealPlanResult struct {
	SessionID   string               `json:"sessionId"`
	Meals       []GeneratedMeal      `json:"meals"`
	GroceryList shopping.GroceryList `json:"groceryList"`

	TotalPrepTime      int     `json:"totalPrepTime"`
	TotalEstimatedCost float64 `json:"totalEstimatedCost"`
	AverageCostPerMeal float64 `json:"averageCostPerMeal"`
	AverageTimePerMeal float64 `json:"averageTimePerMeal"`

	PrepAheadTips  []string `json:"prepAheadTips"`
	TimeSavingTips []string `json:"timeSavingTips"`
	BudgetTips     []string `json:"budgetTips"`
	PickyEaterTips []string `json:"pickyEaterTips"`
	TipIDs         TipIDs   `json:"tipIds"`

	AppliedFilters recipe.Constraints `json:"appliedFilters"`
	GeneratedAt    time.Time          `json:"generatedAt"`
}
