package tips

import (
	"slices"

	"meal-plan-generator/internal/recipe"
)

// ID names a tip independently of its wording.
type ID string

const (
	PrepBatchCook       ID = "prep.batch_cook"
	PrepSlowCooker      ID = "prep.slow_cooker"
	PrepChopVegetables  ID = "prep.chop_vegetables"
	PrepCookGrains      ID = "prep.cook_grains"
	PrepMarinateProtein ID = "prep.marinate_protein"

	TimeReadAhead     ID = "time.read_ahead"
	TimeCleanAsYouGo  ID = "time.clean_as_you_go"
	TimePrecutProduce ID = "time.precut_produce"
	TimeInstantPot    ID = "time.instant_pot"
	TimeAirFryer      ID = "time.air_fryer"
	TimeKidsHelp      ID = "time.kids_help"

	BudgetPerPerson   ID = "budget.per_person"
	BudgetStoreBrands ID = "budget.store_brands"
	BudgetWeeklySales ID = "budget.weekly_sales"
	BudgetLeftovers   ID = "budget.leftovers"

	PickySevereSafeFood    ID = "picky.severe.safe_food"
	PickySevereNoPressure  ID = "picky.severe.no_pressure"
	PickySevereDeconstruct ID = "picky.severe.deconstruct"
	PickySevereRepeat      ID = "picky.severe.repeat_exposure"

	PickyModerateOneBite ID = "picky.moderate.one_bite"
	PickyModerateInvolve ID = "picky.moderate.involve"
	PickyModerateDips    ID = "picky.moderate.dips"
	PickyModeratePraise  ID = "picky.moderate.praise"

	PickyMildAdventure     ID = "picky.mild.adventure"
	PickyMildNewIngredient ID = "picky.mild.new_ingredient"
	PickyMildFamilyStyle   ID = "picky.mild.family_style"
)

var (
	genericPrep   = []ID{PrepChopVegetables, PrepCookGrains, PrepMarinateProtein}
	genericTime   = []ID{TimeReadAhead, TimeCleanAsYouGo, TimePrecutProduce}
	budgetTips    = []ID{BudgetPerPerson, BudgetStoreBrands, BudgetWeeklySales, BudgetLeftovers}
	severeTips    = []ID{PickySevereSafeFood, PickySevereNoPressure, PickySevereDeconstruct, PickySevereRepeat}
	moderateTips  = []ID{PickyModerateOneBite, PickyModerateInvolve, PickyModerateDips, PickyModeratePraise}
	adventureTips = []ID{PickyMildAdventure, PickyMildNewIngredient, PickyMildFamilyStyle}
)

// PrepAhead picks prep-ahead tips for the categories present in a plan.
func PrepAhead(categories []recipe.Category) []ID {
	var out []ID
	if slices.Contains(categories, recipe.CategoryBatchCook) {
		out = append(out, PrepBatchCook)
	}
	if slices.Contains(categories, recipe.CategorySlowCooker) {
		out = append(out, PrepSlowCooker)
	}
	return append(out, genericPrep...)
}

// TimeSaving picks time-saving tips for the household's kitchen and kids.
func TimeSaving(equipment []string, children int) []ID {
	out := slices.Clone(genericTime)
	if slices.Contains(equipment, recipe.EquipmentInstantPot) {
		out = append(out, TimeInstantPot)
	}
	if slices.Contains(equipment, recipe.EquipmentAirFryer) {
		out = append(out, TimeAirFryer)
	}
	if children > 0 {
		out = append(out, TimeKidsHelp)
	}
	return out
}

// Budget returns the budget tips. The first one carries the per-person cost.
func Budget() []ID {
	return slices.Clone(budgetTips)
}

// PickyEater picks the coaching tips for a picky-eater level. Mild and none
// share the adventurous list.
func PickyEater(level recipe.PickyLevel) []ID {
	switch level {
	case recipe.PickySevere:
		return slices.Clone(severeTips)
	case recipe.PickyModerate:
		return slices.Clone(moderateTips)
	default:
		return slices.Clone(adventureTips)
	}
}

// PerPersonPerMeal is the plan cost split across every plate served.
func PerPersonPerMeal(totalCost float64, familySize, mealCount int) float64 {
	plates := familySize * mealCount
	if plates <= 0 {
		return 0
	}
	return totalCost / float64(plates)
}
