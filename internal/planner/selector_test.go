package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meal-plan-generator/internal/recipe"
)

// scriptedRandom returns its picks in order, wrapped into range.
type scriptedRandom struct {
	picks []int
	next  int
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[s.next%len(s.picks)]
	s.next++
	return v % n
}

func templates(perCategory int, cats ...recipe.Category) []recipe.Template {
	var out []recipe.Template
	for _, c := range cats {
		for i := 0; i < perCategory; i++ {
			out = append(out, recipe.Template{
				ID:       fmt.Sprintf("%s-%d", c, i),
				Name:     fmt.Sprintf("%s %d", c, i),
				Category: c,
				Servings: 4,
			})
		}
	}
	return out
}

func TestSelectDiverseMealsCount(t *testing.T) {
	rnd := SeededRandom(7)
	for size := 0; size <= 10; size++ {
		candidates := templates(size, recipe.CategoryQuick)
		for n := 0; n <= 8; n++ {
			got := SelectDiverseMeals(candidates, n, rnd)
			assert.Lenf(t, got, min(n, size), "candidates=%d count=%d", size, n)
		}
	}
}

func TestSelectDiverseMealsReturnsAllWhenFew(t *testing.T) {
	candidates := templates(1, recipe.CategoryOnePot, recipe.CategoryQuick, recipe.CategoryBatchCook)

	got := SelectDiverseMeals(candidates, 5, &scriptedRandom{picks: []int{2, 1}})

	assert.Equal(t, candidates, got)
	got[0].Name = "changed"
	assert.NotEqual(t, "changed", candidates[0].Name)
}

func TestSelectDiverseMealsCoversCategories(t *testing.T) {
	candidates := templates(3, recipe.Categories...)

	for seed := uint64(0); seed < 200; seed++ {
		got := SelectDiverseMeals(candidates, 5, SeededRandom(seed))
		require.Len(t, got, 5)

		seen := map[recipe.Category]bool{}
		for i, tpl := range got {
			assert.Equal(t, recipe.Categories[i], tpl.Category, "pass one follows category order")
			assert.False(t, seen[tpl.Category], "category %s repeated", tpl.Category)
			seen[tpl.Category] = true
		}
	}
}

func TestSelectDiverseMealsFillsAfterCoverage(t *testing.T) {
	candidates := templates(3, recipe.CategoryQuick, recipe.CategorySlowCooker)

	for seed := uint64(0); seed < 50; seed++ {
		got := SelectDiverseMeals(candidates, 5, SeededRandom(seed))
		require.Len(t, got, 5)
		assert.Equal(t, recipe.CategoryQuick, got[0].Category)
		assert.Equal(t, recipe.CategorySlowCooker, got[1].Category)

		ids := map[string]bool{}
		for _, tpl := range got {
			assert.False(t, ids[tpl.ID], "recipe %s picked twice", tpl.ID)
			ids[tpl.ID] = true
		}
	}
}

func TestSelectDiverseMealsStopsAtCount(t *testing.T) {
	candidates := templates(2, recipe.Categories...)

	got := SelectDiverseMeals(candidates, 2, &scriptedRandom{})

	require.Len(t, got, 2)
	assert.Equal(t, "quick-0", got[0].ID)
	assert.Equal(t, "batch_cook-0", got[1].ID)
}

func TestSelectDiverseMealsScripted(t *testing.T) {
	candidates := templates(2, recipe.CategoryQuick, recipe.CategoryOnePot)

	// Pass one: quick index 1, one_pot index 0. Pass two draws from the
	// two leftovers [quick-0, one_pot-1].
	got := SelectDiverseMeals(candidates, 3, &scriptedRandom{picks: []int{1, 0, 1}})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"quick-1", "one_pot-0", "one_pot-1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSeededRandomIsReproducible(t *testing.T) {
	candidates := templates(4, recipe.Categories...)

	a := SelectDiverseMeals(candidates, 7, SeededRandom(99))
	b := SelectDiverseMeals(candidates, 7, SeededRandom(99))

	assert.Equal(t, a, b)
}
