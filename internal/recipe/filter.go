package recipe

import "slices"

// Constraints is the part of a household profile that decides which recipes
// are eligible. It is echoed back in a plan as the applied filters.
type Constraints struct {
	PickyEaterLevel      PickyLevel `json:"pickyEaterLevel" validate:"required,oneof=severe moderate mild none"`
	DietaryRestrictions  []string   `json:"dietaryRestrictions"`
	Allergies            []string   `json:"allergies"`
	CookingTimeAvailable int        `json:"cookingTimeAvailable" validate:"gte=0"`
	CookingSkillLevel    SkillLevel `json:"cookingSkillLevel" validate:"required,oneof=beginner intermediate advanced"`
	KitchenEquipment     []string   `json:"kitchenEquipment"`
}

// Matches reports whether a template passes every eligibility rule.
// There is no partial credit: one failing rule excludes the recipe.
func Matches(t Template, c Constraints) bool {
	if !slices.Contains(t.PickyEaterFriendly, c.PickyEaterLevel) {
		return false
	}
	if !containsAll(t.DietaryRestrictions, c.DietaryRestrictions) {
		return false
	}
	if !containsAll(t.AvoidAllergies, c.Allergies) {
		return false
	}
	if t.TotalTime() > c.CookingTimeAvailable {
		return false
	}
	if !slices.Contains(t.SkillLevel, c.CookingSkillLevel) {
		return false
	}
	return containsAll(c.KitchenEquipment, t.RequiredEquipment)
}

// containsAll reports whether every element of want is in have.
// An empty want is vacuously satisfied.
func containsAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}
