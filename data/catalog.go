// partymenu/data/catalog.go
package data

import (
	log "github.com/sirupsen/logrus"
)

// Catalog is the read-only set of dishes and their ingredient lists.
// It is built once at startup and shared by every screen.
type Catalog struct {
	dishes      []Dish
	index       map[int]int // dish ID → position in dishes
	ingredients map[int][]Ingredient
}

// NewCatalog builds a Catalog keeping the order of dishes. When two dishes share
// an ID the first one wins and the later one is dropped.
func NewCatalog(dishes []Dish, ingredients map[int][]Ingredient) *Catalog {
	c := &Catalog{
		dishes:      make([]Dish, 0, len(dishes)),
		index:       make(map[int]int, len(dishes)),
		ingredients: make(map[int][]Ingredient, len(ingredients)),
	}
	for _, d := range dishes {
		if _, dup := c.index[d.ID]; dup {
			log.WithField("dish_id", d.ID).Warnf("Duplicate dish %q dropped from catalog", d.Name)
			continue
		}
		c.index[d.ID] = len(c.dishes)
		c.dishes = append(c.dishes, d)
	}
	for id, list := range ingredients {
		c.ingredients[id] = append([]Ingredient(nil), list...)
	}
	return c
}

// Len returns the number of dishes.
func (c *Catalog) Len() int {
	return len(c.dishes)
}

// Dishes returns a copy of all dishes in catalog order.
func (c *Catalog) Dishes() []Dish {
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// Dish returns (Dish, true) if found, or (zero, false) otherwise.
func (c *Catalog) Dish(id int) (Dish, bool) {
	i, ok := c.index[id]
	if !ok {
		return Dish{}, false
	}
	return c.dishes[i], true
}

// DishOrUnknown returns the dish with the given ID, or the UnknownDish placeholder.
func (c *Catalog) DishOrUnknown(id int) Dish {
	if d, ok := c.Dish(id); ok {
		return d
	}
	return UnknownDish(id)
}

// Ingredients returns the ordered ingredient list for a dish.
// The result is empty (never nil) when the dish has no entry.
func (c *Catalog) Ingredients(id int) []Ingredient {
	list := c.ingredients[id]
	out := make([]Ingredient, len(list))
	copy(out, list)
	return out
}
