// partymenu/data/dishes.go
package data

import (
	"database/sql"
	"fmt"
	"strings"
)

// MealCategory partitions dishes into the tabs of the menu.
type MealCategory string

const (
	Starter    MealCategory = "STARTER"
	MainCourse MealCategory = "MAIN COURSE"
	Dessert    MealCategory = "DESSERT"
	Sides      MealCategory = "SIDES"
)

var mealCategories = []MealCategory{Starter, MainCourse, Dessert, Sides}

// MealCategories returns every meal category in tab order.
func MealCategories() []MealCategory {
	out := make([]MealCategory, len(mealCategories))
	copy(out, mealCategories)
	return out
}

// Valid reports whether c is one of the enumerated categories.
func (c MealCategory) Valid() bool {
	for _, m := range mealCategories {
		if c == m {
			return true
		}
	}
	return false
}

// ParseMealCategory accepts a category name in any letter case, e.g. "main course".
func ParseMealCategory(s string) (MealCategory, error) {
	c := MealCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown meal category %q", s)
	}
	return c, nil
}

// DietType is the VEG / NON_VEG classification used by the diet checkboxes.
type DietType string

const (
	Veg    DietType = "VEG"
	NonVeg DietType = "NON_VEG"
)

// ParseDietType accepts "veg" and "non_veg" in any letter case.
func ParseDietType(s string) (DietType, error) {
	switch d := DietType(strings.ToUpper(strings.TrimSpace(s))); d {
	case Veg, NonVeg:
		return d, nil
	}
	return "", fmt.Errorf("unknown diet type %q", s)
}

// Dish is a single menu entry. Dishes are never modified after loading.
type Dish struct {
	ID          int
	Name        string
	Category    MealCategory
	Diet        DietType
	Description string
	Image       sql.NullString // image reference (path or URI), NULL when the dish has none
}

// Ingredient is one line of a dish's ingredient list.
type Ingredient struct {
	Name     string
	Quantity string // free text, e.g. "250 g" or "1 large"
}

// UnknownName is shown for dishes that are not in the catalog.
const UnknownName = "Unknown"

// UnknownDish builds the placeholder rendered for an identifier with no dish.
func UnknownDish(id int) Dish {
	return Dish{ID: id, Name: UnknownName}
}
