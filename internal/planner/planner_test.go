package planner

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"meal-plan-generator/internal/pricing"
	"meal-plan-generator/internal/recipe"
	"meal-plan-generator/internal/tips"
)

func moderateFamily() MealPlanInput {
	return MealPlanInput{
		Constraints: recipe.Constraints{
			PickyEaterLevel:      recipe.PickyModerate,
			DietaryRestrictions:  []string{},
			Allergies:            []string{},
			CookingTimeAvailable: 60,
			CookingSkillLevel:    recipe.SkillBeginner,
			KitchenEquipment:     []string{},
		},
		FamilySize: 4,
		Children:   2,
	}
}

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithRandom(SeededRandom(1)), WithLogger(zaptest.NewLogger(t))}, opts...)
	g, err := NewGenerator(recipe.MustDefaultCatalog(), pricing.DefaultTable(), opts...)
	require.NoError(t, err)
	return g
}

func TestGenerateMealPlan(t *testing.T) {
	g := newTestGenerator(t)
	input := moderateFamily()

	plan, err := g.GenerateMealPlan(input, "session-123")
	require.NoError(t, err)

	assert.Equal(t, "session-123", plan.SessionID)
	require.Len(t, plan.Meals, 5)
	assert.Greater(t, plan.TotalEstimatedCost, 0.0)

	var totalTime int
	var mealCost float64
	for i, m := range plan.Meals {
		assert.Equal(t, i+1, m.Day)
		assert.Equal(t, 4, m.Servings)
		assert.LessOrEqual(t, m.TotalTime, 60)
		totalTime += m.TotalTime
		mealCost += m.EstimatedCost
	}
	assert.Equal(t, totalTime, plan.TotalPrepTime)
	assert.InDelta(t, mealCost, plan.TotalEstimatedCost, 0.05)
	assert.Equal(t, pricing.RoundCents(plan.TotalEstimatedCost/5), plan.AverageCostPerMeal)
	assert.Equal(t, float64(totalTime)/5, plan.AverageTimePerMeal)

	assert.Equal(t, tips.PickyEater(recipe.PickyModerate), plan.TipIDs.PickyEater)
	require.Len(t, plan.PickyEaterTips, 4)
	assert.Contains(t, plan.PickyEaterTips[0], "one bite rule")

	assert.Contains(t, plan.TipIDs.TimeSaving, tips.TimeKidsHelp)
	assert.NotContains(t, plan.TipIDs.TimeSaving, tips.TimeInstantPot)
	assert.Len(t, plan.BudgetTips, 4)
	assert.Contains(t, plan.BudgetTips[0], "per person per meal")
	assert.GreaterOrEqual(t, len(plan.PrepAheadTips), 3)

	assert.Equal(t, input.Constraints, plan.AppliedFilters)
	assert.NotEmpty(t, plan.GroceryList.Items)
	assert.Equal(t, plan.TotalEstimatedCost, plan.GroceryList.TotalEstimatedCost)
}

func TestGenerateMealPlanCoversCategories(t *testing.T) {
	// The moderate beginner profile matches quick, batch-cook, one-pot and
	// family-favorite recipes, but no slow-cooker ones.
	for seed := uint64(0); seed < 25; seed++ {
		g := newTestGenerator(t, WithRandom(SeededRandom(seed)))
		plan, err := g.GenerateMealPlan(moderateFamily(), "s")
		require.NoError(t, err)

		got := map[recipe.Category]int{}
		for _, m := range plan.Meals[:4] {
			got[m.Category]++
		}
		assert.Equal(t, map[recipe.Category]int{
			recipe.CategoryQuick:          1,
			recipe.CategoryBatchCook:      1,
			recipe.CategoryOnePot:         1,
			recipe.CategoryFamilyFavorite: 1,
		}, got)
		assert.Contains(t, plan.TipIDs.PrepAhead, tips.PrepBatchCook)
		assert.NotContains(t, plan.TipIDs.PrepAhead, tips.PrepSlowCooker)
	}
}

func TestGenerateMealPlanNoSuitableRecipes(t *testing.T) {
	g := newTestGenerator(t)
	input := moderateFamily()
	input.Allergies = []string{"peanuts", "tree_nuts", "fish", "shellfish", "soy", "wheat", "sesame", "eggs", "milk"}

	plan, err := g.GenerateMealPlan(input, "s")

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrNoSuitableRecipes))
	var noRecipes *NoSuitableRecipesError
	require.True(t, errors.As(err, &noRecipes))
	assert.Equal(t, input.Allergies, noRecipes.Filters.Allergies)
	assert.Contains(t, err.Error(), "No suitable recipes found")
}

func TestGenerateMealPlanRejectsEmptyHousehold(t *testing.T) {
	g := newTestGenerator(t)

	for _, size := range []int{0, -2} {
		input := moderateFamily()
		input.FamilySize = size

		plan, err := g.GenerateMealPlan(input, "s")

		assert.Nil(t, plan, "family size %d", size)
		assert.True(t, errors.Is(err, ErrNoSuitableRecipes), "family size %d", size)
		assert.Empty(t, g.Candidates(input))
	}
}

func TestGenerateMealPlanEchoesNilSetsAsLists(t *testing.T) {
	g := newTestGenerator(t)
	input := moderateFamily()
	input.DietaryRestrictions = nil
	input.Allergies = nil
	input.KitchenEquipment = nil

	plan, err := g.GenerateMealPlan(input, "s")
	require.NoError(t, err)

	assert.NotNil(t, plan.AppliedFilters.DietaryRestrictions)
	assert.NotNil(t, plan.AppliedFilters.Allergies)
	assert.NotNil(t, plan.AppliedFilters.KitchenEquipment)

	encoded, err := json.Marshal(plan.AppliedFilters)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"dietaryRestrictions":[]`)
	assert.Contains(t, string(encoded), `"allergies":[]`)
	assert.Contains(t, string(encoded), `"kitchenEquipment":[]`)
	assert.NotContains(t, string(encoded), "null")
}

func TestGenerateMealPlanFewCandidates(t *testing.T) {
	g := newTestGenerator(t)
	input := moderateFamily()
	input.DietaryRestrictions = []string{recipe.DietVegetarian}

	plan, err := g.GenerateMealPlan(input, "s")
	require.NoError(t, err)

	want := g.Candidates(input)
	require.Less(t, len(want), 5)
	require.Len(t, plan.Meals, len(want))
	for i, m := range plan.Meals {
		assert.Equal(t, want[i].ID, m.RecipeID, "few candidates keep filter order")
	}
}

func TestGenerateMealPlanOptions(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	resolver, err := tips.ParseTemplateResolver(`{{define "budget.per_person"}}{{money .PerPersonPerMeal}}{{end}}`)
	require.NoError(t, err)

	t.Run("DayCountAndClock", func(t *testing.T) {
		g := newTestGenerator(t, WithDayCount(3), WithClock(func() time.Time { return fixed }))
		assert.Equal(t, 3, g.DayCount())

		plan, err := g.GenerateMealPlan(moderateFamily(), "s")
		require.NoError(t, err)
		assert.Len(t, plan.Meals, 3)
		assert.Equal(t, fixed, plan.GeneratedAt)
	})

	t.Run("InvalidDayCountKeepsDefault", func(t *testing.T) {
		g := newTestGenerator(t, WithDayCount(0))
		assert.Equal(t, DefaultDayCount, g.DayCount())
	})

	t.Run("ResolverMissingWording", func(t *testing.T) {
		g := newTestGenerator(t, WithTipResolver(resolver))
		_, err := g.GenerateMealPlan(moderateFamily(), "s")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve prep-ahead tips")
	})
}

func TestGenerateMealPlanSeededIsReproducible(t *testing.T) {
	a, err := newTestGenerator(t, WithRandom(SeededRandom(5))).GenerateMealPlan(moderateFamily(), "s")
	require.NoError(t, err)
	b, err := newTestGenerator(t, WithRandom(SeededRandom(5))).GenerateMealPlan(moderateFamily(), "s")
	require.NoError(t, err)

	for i := range a.Meals {
		assert.Equal(t, a.Meals[i].RecipeID, b.Meals[i].RecipeID)
		assert.NotEqual(t, a.Meals[i].ID, b.Meals[i].ID)
	}
	assert.Equal(t, a.GroceryList.Items, b.GroceryList.Items)
}

func TestGenerateMealPlanConcurrent(t *testing.T) {
	g := newTestGenerator(t, WithRandom(SystemRandom()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			plan, err := g.GenerateMealPlan(moderateFamily(), "s")
			assert.NoError(t, err)
			if plan != nil {
				assert.Len(t, plan.Meals, 5)
			}
		}()
	}
	wg.Wait()
}

func TestMealPlanInputValidate(t *testing.T) {
	assert.NoError(t, moderateFamily().Validate())

	bad := moderateFamily()
	bad.FamilySize = 0
	assert.Error(t, bad.Validate())

	bad = moderateFamily()
	bad.PickyEaterLevel = "extreme"
	assert.Error(t, bad.Validate())

	bad = moderateFamily()
	bad.CookingSkillLevel = ""
	assert.Error(t, bad.Validate())
}
