package planner

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"meal-plan-generator/internal/pricing"
	"meal-plan-generator/internal/recipe"
	"meal-plan-generator/internal/shopping"
	"meal-plan-generator/internal/tips"
)

// DefaultDayCount is the number of dinners in a plan unless configured.
const DefaultDayCount = 5

// Generator builds meal plans from a catalog. It holds no per-request state
// and may be shared between goroutines.
type Generator struct {
	catalog  *recipe.Catalog
	costs    pricing.CostLookup
	random   Random
	tips     tips.Resolver
	logger   *zap.Logger
	dayCount int
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom replaces the selector's random source, e.g. with SeededRandom.
func WithRandom(r Random) Option {
	return func(g *Generator) { g.random = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithDayCount sets how many meals a plan contains. Values below 1 keep the default.
func WithDayCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.dayCount = n
		}
	}
}

// WithTipResolver replaces the tip wording.
func WithTipResolver(r tips.Resolver) Option {
	return func(g *Generator) { g.tips = r }
}

// WithClock sets the time source used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a Generator over a catalog and a price source.
func NewGenerator(catalog *recipe.Catalog, costs pricing.CostLookup, opts ...Option) (*Generator, error) {
	g := &Generator{
		catalog:  catalog,
		costs:    costs,
		random:   SystemRandom(),
		logger:   zap.NewNop(),
		dayCount: DefaultDayCount,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.tips == nil {
		r, err := tips.NewTemplateResolver()
		if err != nil {
			return nil, err
		}
		g.tips = r
	}
	return g, nil
}

// DayCount returns the number of meals each plan contains.
func (g *Generator) DayCount() int {
	return g.dayCount
}

// Candidates returns the catalog recipes compatible with the input. A
// household of fewer than one person matches nothing.
func (g *Generator) Candidates(input MealPlanInput) []recipe.Template {
	if input.FamilySize < 1 {
		return nil
	}
	return g.catalog.Filter(input.Constraints)
}

// GenerateMealPlan filters the catalog, picks a varied set of dinners, scales
// and prices them, and builds the consolidated grocery list and tips.
//
// It returns a *NoSuitableRecipesError when nothing in the catalog fits. The
// choice among eligible recipes is random unless a seeded source was given.
func (g *Generator) GenerateMealPlan(input MealPlanInput, sessionID string) (*MealPlanResult, error) {
	candidates := g.Candidates(input)
	if len(candidates) == 0 {
		g.logger.Debug("no recipes match constraints",
			zap.String("session_id", sessionID),
			zap.Int("family_size", input.FamilySize),
		)
		return nil, &NoSuitableRecipesError{Filters: cloneConstraints(input.Constraints)}
	}

	selected := SelectDiverseMeals(candidates, g.dayCount, g.random)

	meals := make([]GeneratedMeal, 0, len(selected))
	for i, tpl := range selected {
		meals = append(meals, GenerateMealFromRecipe(tpl, i+1, input.FamilySize, g.costs))
	}

	groceries := shopping.GenerateGroceryList(shoppingMeals(meals))

	var totalPrep int
	for _, m := range meals {
		totalPrep += m.TotalTime
	}
	n := len(meals)
	totalCost := groceries.TotalEstimatedCost

	tipIDs := TipIDs{
		PrepAhead:  tips.PrepAhead(categories(meals)),
		TimeSaving: tips.TimeSaving(input.KitchenEquipment, input.Children),
		Budget:     tips.Budget(),
		PickyEater: tips.PickyEater(input.PickyEaterLevel),
	}
	tipData := tips.Data{
		PerPersonPerMeal: tips.PerPersonPerMeal(totalCost, input.FamilySize, n),
		FamilySize:       input.FamilySize,
		Children:         input.Children,
		MealNames:        mealNames(meals),
		BatchCookMeal:    firstInCategory(meals, recipe.CategoryBatchCook),
		SlowCookerMeal:   firstInCategory(meals, recipe.CategorySlowCooker),
	}

	result := &MealPlanResult{
		SessionID:          sessionID,
		Meals:              meals,
		GroceryList:        groceries,
		TotalPrepTime:      totalPrep,
		TotalEstimatedCost: totalCost,
		AverageCostPerMeal: pricing.RoundCents(totalCost / float64(n)),
		AverageTimePerMeal: float64(totalPrep) / float64(n),
		TipIDs:             tipIDs,
		AppliedFilters:     cloneConstraints(input.Constraints),
		GeneratedAt:        g.now().UTC(),
	}

	var err error
	if result.PrepAheadTips, err = tips.ResolveAll(g.tips, tipIDs.PrepAhead, tipData); err != nil {
		return nil, fmt.Errorf("failed to resolve prep-ahead tips: %w", err)
	}
	if result.TimeSavingTips, err = tips.ResolveAll(g.tips, tipIDs.TimeSaving, tipData); err != nil {
		return nil, fmt.Errorf("failed to resolve time-saving tips: %w", err)
	}
	if result.BudgetTips, err = tips.ResolveAll(g.tips, tipIDs.Budget, tipData); err != nil {
		return nil, fmt.Errorf("failed to resolve budget tips: %w", err)
	}
	if result.PickyEaterTips, err = tips.ResolveAll(g.tips, tipIDs.PickyEater, tipData); err != nil {
		return nil, fmt.Errorf("failed to resolve picky-eater tips: %w", err)
	}

	g.logger.Debug("meal plan generated",
		zap.String("session_id", sessionID),
		zap.Int("candidates", len(candidates)),
		zap.Strings("recipes", recipeIDs(meals)),
		zap.Float64("total_cost", totalCost),
		zap.Int("grocery_items", len(groceries.Items)),
	)
	return result, nil
}

func shoppingMeals(meals []GeneratedMeal) []shopping.Meal {
	out := make([]shopping.Meal, len(meals))
	for i, m := range meals {
		out[i] = shopping.Meal{Day: m.Day, Ingredients: m.Ingredients}
	}
	return out
}

func categories(meals []GeneratedMeal) []recipe.Category {
	out := make([]recipe.Category, len(meals))
	for i, m := range meals {
		out[i] = m.Category
	}
	return out
}

func mealNames(meals []GeneratedMeal) []string {
	out := make([]string, len(meals))
	for i, m := range meals {
		out[i] = m.Name
	}
	return out
}

func recipeIDs(meals []GeneratedMeal) []string {
	out := make([]string, len(meals))
	for i, m := range meals {
		out[i] = m.RecipeID
	}
	return out
}

func firstInCategory(meals []GeneratedMeal, c recipe.Category) string {
	for _, m := range meals {
		if m.Category == c {
			return m.Name
		}
	}
	return ""
}

// cloneConstraints copies the tag sets, turning nil into empty so the echo
// always encodes lists.
func cloneConstraints(c recipe.Constraints) recipe.Constraints {
	c.DietaryRestrictions = cloneTags(c.DietaryRestrictions)
	c.Allergies = cloneTags(c.Allergies)
	c.KitchenEquipment = cloneTags(c.KitchenEquipment)
	return c
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
