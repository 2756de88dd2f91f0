package recipe

import (
	"errors"
	"fmt"
	"slices"
)

// PickyLevel describes how resistant a household's children are to new foods.
type PickyLevel string

const (
	PickySevere   PickyLevel = "severe"
	PickyModerate PickyLevel = "moderate"
	PickyMild     PickyLevel = "mild"
	PickyNone     PickyLevel = "none"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Category is the meal style used for weekly variety.
type Category string

const (
	CategoryQuick          Category = "quick"
	CategoryBatchCook      Category = "batch_cook"
	CategorySlowCooker     Category = "slow_cooker"
	CategoryOnePot         Category = "one_pot"
	CategoryFamilyFavorite Category = "family_favorite"
)

// Categories is the order in which the selector tries to cover meal styles.
var Categories = []Category{
	CategoryQuick,
	CategoryBatchCook,
	CategorySlowCooker,
	CategoryOnePot,
	CategoryFamilyFavorite,
}

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// GroceryCategory is the store aisle an ingredient is bought from.
type GroceryCategory string

const (
	GroceryProduce     GroceryCategory = "produce"
	GroceryMeatSeafood GroceryCategory = "meat_seafood"
	GroceryDairy       GroceryCategory = "dairy"
	GroceryBakery      GroceryCategory = "bakery"
	GroceryPantry      GroceryCategory = "pantry"
	GroceryFrozen      GroceryCategory = "frozen"
	GroceryCanned      GroceryCategory = "canned"
	GroceryCondiments  GroceryCategory = "condiments"
	GrocerySpices      GroceryCategory = "spices"
	GroceryBeverages   GroceryCategory = "beverages"
)

var GroceryCategories = []GroceryCategory{
	GroceryProduce,
	GroceryMeatSeafood,
	GroceryDairy,
	GroceryBakery,
	GroceryPantry,
	GroceryFrozen,
	GroceryCanned,
	GroceryCondiments,
	GrocerySpices,
	GroceryBeverages,
}

// Diet tags a recipe can satisfy.
const (
	DietVegetarian = "vegetarian"
	DietVegan      = "vegan"
	DietGlutenFree = "gluten_free"
	DietDairyFree  = "dairy_free"
	DietLowCarb    = "low_carb"
	DietNone       = "none"
)

// Allergen tags a recipe can guarantee to avoid.
const (
	AllergenPeanuts   = "peanuts"
	AllergenTreeNuts  = "tree_nuts"
	AllergenFish      = "fish"
	AllergenShellfish = "shellfish"
	AllergenSoy       = "soy"
	AllergenWheat     = "wheat"
	AllergenSesame    = "sesame"
	AllergenEggs      = "eggs"
	AllergenMilk      = "milk"
)

// AllAllergens is every allergen the catalog knows about.
var AllAllergens = []string{
	AllergenPeanuts,
	AllergenTreeNuts,
	AllergenFish,
	AllergenShellfish,
	AllergenSoy,
	AllergenWheat,
	AllergenSesame,
	AllergenEggs,
	AllergenMilk,
}

// Kitchen equipment tags.
const (
	EquipmentSlowCooker = "slow_cooker"
	EquipmentInstantPot = "instant_pot"
	EquipmentAirFryer   = "air_fryer"
	EquipmentSheetPan   = "sheet_pan"
	EquipmentBlender    = "blender"
	EquipmentGrill      = "grill"
)

// Ingredient is one line of a recipe, written for the recipe's base servings.
type Ingredient struct {
	Name     string          `json:"name"`
	Amount   float64         `json:"amount"`
	Unit     string          `json:"unit"`
	Category GroceryCategory `json:"category"`
}

// PricedIngredient is an ingredient scaled to a household with its cost estimate.
type PricedIngredient struct {
	Ingredient
	EstimatedCost float64 `json:"estimatedCost"`
}

// Template is an immutable catalog entry.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PrepTime    int        `json:"prepTime"`
	CookTime    int        `json:"cookTime"`
	Servings    int        `json:"servings"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    Category   `json:"category"`

	PickyEaterFriendly  []PickyLevel `json:"pickyEaterFriendly"`
	DietaryRestrictions []string     `json:"dietaryRestrictions"`
	AvoidAllergies      []string     `json:"avoidAllergies"`
	RequiredEquipment   []string     `json:"requiredEquipment"`
	SkillLevel          []SkillLevel `json:"skillLevel"`

	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`

	WhyItWorks      string   `json:"whyItWorks"`
	KidFriendlyTips []string `json:"kidFriendlyTips"`
	LeftoverIdeas   []string `json:"leftoverIdeas"`
	Tags            []string `json:"tags"`

	// BaseCost is informational only; plan costs are recomputed from unit prices.
	BaseCost float64 `json:"baseCost"`
}

// TotalTime returns prep plus cook minutes.
func (t Template) TotalTime() int {
	return t.PrepTime + t.CookTime
}

var (
	ErrMissingID       = errors.New("recipe id is required")
	ErrInvalidServings = errors.New("servings must be greater than 0")
	ErrNoIngredients   = errors.New("recipe must have at least one ingredient")
	ErrNegativeTime    = errors.New("prep and cook time cannot be negative")
	ErrNoSuitability   = errors.New("recipe must declare picky-eater and skill suitability")
)

// Validate checks the structural invariants of a template loaded from an
// external catalog file.
func (t Template) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	if t.Servings <= 0 {
		return fmt.Errorf("%s: %w", t.ID, ErrInvalidServings)
	}
	if t.PrepTime < 0 || t.CookTime < 0 {
		return fmt.Errorf("%s: %w", t.ID, ErrNegativeTime)
	}
	if len(t.Ingredients) == 0 {
		return fmt.Errorf("%s: %w", t.ID, ErrNoIngredients)
	}
	if len(t.PickyEaterFriendly) == 0 || len(t.SkillLevel) == 0 {
		return fmt.Errorf("%s: %w", t.ID, ErrNoSuitability)
	}
	for _, ing := range t.Ingredients {
		if ing.Name == "" {
			return fmt.Errorf("%s: ingredient name is required", t.ID)
		}
		if ing.Amount < 0 {
			return fmt.Errorf("%s: ingredient %q amount cannot be negative", t.ID, ing.Name)
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate catalog entries.
func (t Template) Clone() Template {
	c := t
	c.PickyEaterFriendly = slices.Clone(t.PickyEaterFriendly)
	c.DietaryRestrictions = slices.Clone(t.DietaryRestrictions)
	c.AvoidAllergies = slices.Clone(t.AvoidAllergies)
	c.RequiredEquipment = slices.Clone(t.RequiredEquipment)
	c.SkillLevel = slices.Clone(t.SkillLevel)
	c.Ingredients = slices.Clone(t.Ingredients)
	c.Instructions = slices.Clone(t.Instructions)
	c.KidFriendlyTips = slices.Clone(t.KidFriendlyTips)
	c.LeftoverIdeas = slices.Clone(t.LeftoverIdeas)
	c.Tags = slices.Clone(t.Tags)
	return c
}
