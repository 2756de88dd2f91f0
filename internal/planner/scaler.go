package planner

import (
	"slices"

	"github.com/google/uuid"

	"meal-plan-generator/internal/pricing"
	"meal-plan-generator/internal/recipe"
)

// GenerateMealFromRecipe scales a recipe to familySize servings and prices it.
// Times are copied as written; cooking for more people does not take longer.
func GenerateMealFromRecipe(tpl recipe.Template, day, familySize int, costs pricing.CostLookup) GeneratedMeal {
	scale := float64(familySize) / float64(tpl.Servings)

	ingredients := make([]recipe.PricedIngredient, 0, len(tpl.Ingredients))
	var total float64
	for _, ing := range tpl.Ingredients {
		scaled := ing
		scaled.Amount = pricing.RoundAmount(ing.Amount * scale)
		cost := pricing.RoundCents(costs.UnitCost(ing.Name) * scaled.Amount)
		total += cost
		ingredients = append(ingredients, recipe.PricedIngredient{Ingredient: scaled, EstimatedCost: cost})
	}

	return GeneratedMeal{
		ID:              uuid.NewString(),
		Day:             day,
		RecipeID:        tpl.ID,
		Name:            tpl.Name,
		Description:     tpl.Description,
		PrepTime:        tpl.PrepTime,
		CookTime:        tpl.CookTime,
		TotalTime:       tpl.TotalTime(),
		Servings:        familySize,
		Difficulty:      tpl.Difficulty,
		Category:        tpl.Category,
		Ingredients:     ingredients,
		Instructions:    slices.Clone(tpl.Instructions),
		WhyItWorks:      tpl.WhyItWorks,
		KidFriendlyTips: slices.Clone(tpl.KidFriendlyTips),
		LeftoverIdeas:   slices.Clone(tpl.LeftoverIdeas),
		Tags:            slices.Clone(tpl.Tags),
		EstimatedCost:   pricing.RoundCents(total),
	}
}
