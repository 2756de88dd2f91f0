package shopping

import (
	"strings"

	"meal-plan-generator/internal/pricing"
	"meal-plan-generator/internal/recipe"
)

// StoreSection names an aisle of the store, in walking order.
type StoreSection string

const (
	SectionProduce     StoreSection = "Produce"
	SectionMeatSeafood StoreSection = "Meat & Seafood"
	SectionDairy       StoreSection = "Dairy"
	SectionFrozen      StoreSection = "Frozen Foods"
	SectionBakery      StoreSection = "Bakery"
	SectionCanned      StoreSection = "Canned Goods"
	SectionPantry      StoreSection = "Pantry/Dry Goods"
	SectionCondiments  StoreSection = "Condiments & Sauces"
	SectionSpices      StoreSection = "Spices"
	SectionBeverages   StoreSection = "Beverages"
)

// storeLayout maps grocery categories onto aisles in store order.
var storeLayout = []struct {
	Section  StoreSection
	Category recipe.GroceryCategory
}{
	{SectionProduce, recipe.GroceryProduce},
	{SectionMeatSeafood, recipe.GroceryMeatSeafood},
	{SectionDairy, recipe.GroceryDairy},
	{SectionFrozen, recipe.GroceryFrozen},
	{SectionBakery, recipe.GroceryBakery},
	{SectionCanned, recipe.GroceryCanned},
	{SectionPantry, recipe.GroceryPantry},
	{SectionCondiments, recipe.GroceryCondiments},
	{SectionSpices, recipe.GrocerySpices},
	{SectionBeverages, recipe.GroceryBeverages},
}

// Meal is the slice of a planned meal the grocery list cares about.
type Meal struct {
	Day         int
	Ingredients []recipe.PricedIngredient
}

// GroceryItem is one consolidated shopping-list line.
type GroceryItem struct {
	Name          string                 `json:"name"`
	Amount        float64                `json:"amount"`
	Unit          string                 `json:"unit"`
	Category      recipe.GroceryCategory `json:"category"`
	EstimatedCost float64                `json:"estimatedCost"`
	UsedInMeals   []int                  `json:"usedInMeals"`
	Optional      bool                   `json:"optional"`
}

// Section is a non-empty aisle of the shopping list.
type Section struct {
	Name  StoreSection  `json:"name"`
	Items []GroceryItem `json:"items"`
}

// GroceryList is the consolidated list for a whole plan.
type GroceryList struct {
	Items               []GroceryItem                            `json:"items"`
	TotalEstimatedCost  float64                                  `json:"totalEstimatedCost"`
	OrganizedByCategory map[recipe.GroceryCategory][]GroceryItem `json:"organizedByCategory"`
	OrganizedByStore    []Section                                `json:"organizedByStore"`
}

// Section returns the aisle with the given name, if the list has one.
func (g GroceryList) Section(name StoreSection) (Section, bool) {
	for _, s := range g.OrganizedByStore {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// ConsolidationKey identifies the shopping-list line an ingredient merges into.
// Names compare case-insensitively, units exactly.
func ConsolidationKey(name, unit string) string {
	return strings.ToLower(name) + "_" + unit
}

// GenerateGroceryList merges the ingredients of every meal into a single
// list. Items keep first-seen order; a meal listing the same ingredient twice
// contributes twice.
func GenerateGroceryList(meals []Meal) GroceryList {
	index := make(map[string]int)
	var items []GroceryItem

	for _, meal := range meals {
		for _, ing := range meal.Ingredients {
			key := ConsolidationKey(ing.Name, ing.Unit)
			if i, ok := index[key]; ok {
				items[i].Amount += ing.Amount
				items[i].EstimatedCost += ing.EstimatedCost
				items[i].UsedInMeals = append(items[i].UsedInMeals, meal.Day)
				continue
			}
			index[key] = len(items)
			items = append(items, GroceryItem{
				Name:          ing.Name,
				Amount:        ing.Amount,
				Unit:          ing.Unit,
				Category:      ing.Category,
				EstimatedCost: ing.EstimatedCost,
				UsedInMeals:   []int{meal.Day},
			})
		}
	}

	var total float64
	for i := range items {
		items[i].Amount = pricing.RoundAmount(items[i].Amount)
		items[i].EstimatedCost = pricing.RoundCents(items[i].EstimatedCost)
		total += items[i].EstimatedCost
	}

	byCategory := organizeByCategory(items)
	return GroceryList{
		Items:               items,
		TotalEstimatedCost:  pricing.RoundCents(total),
		OrganizedByCategory: byCategory,
		OrganizedByStore:    organizeByStore(byCategory),
	}
}

func organizeByCategory(items []GroceryItem) map[recipe.GroceryCategory][]GroceryItem {
	buckets := make(map[recipe.GroceryCategory][]GroceryItem, len(recipe.GroceryCategories))
	for _, c := range recipe.GroceryCategories {
		buckets[c] = []GroceryItem{}
	}
	for _, item := range items {
		c := item.Category
		if _, known := buckets[c]; !known {
			c = recipe.GroceryPantry
		}
		buckets[c] = append(buckets[c], item)
	}
	return buckets
}

func organizeByStore(byCategory map[recipe.GroceryCategory][]GroceryItem) []Section {
	var sections []Section
	for _, aisle := range storeLayout {
		items := byCategory[aisle.Category]
		if len(items) == 0 {
			continue
		}
		sections = append(sections, Section{Name: aisle.Section, Items: items})
	}
	return sections
}
