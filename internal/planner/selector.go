package planner

import (
	"slices"

	"meal-plan-generator/internal/recipe"
)

// SelectDiverseMeals picks count recipes, covering as many categories as
// possible before repeating one.
//
// The first pass walks recipe.Categories and takes one random candidate from
// each category present. The second pass fills the remaining slots at random
// from whatever is left. When there are no more candidates than slots, every
// candidate is returned in its original order.
func SelectDiverseMeals(candidates []recipe.Template, count int, rnd Random) []recipe.Template {
	if count <= 0 {
		return []recipe.Template{}
	}
	if len(candidates) <= count {
		return slices.Clone(candidates)
	}

	remaining := slices.Clone(candidates)
	selected := make([]recipe.Template, 0, count)
	take := func(i int) {
		selected = append(selected, remaining[i])
		remaining = slices.Delete(remaining, i, i+1)
	}

	for _, category := range recipe.Categories {
		if len(selected) >= count {
			break
		}
		var inCategory []int
		for i, c := range remaining {
			if c.Category == category {
				inCategory = append(inCategory, i)
			}
		}
		if len(inCategory) == 0 {
			continue
		}
		take(inCategory[rnd.IntN(len(inCategory))])
	}

	for len(selected) < count && len(remaining) > 0 {
		take(rnd.IntN(len(remaining)))
	}
	return selected
}
