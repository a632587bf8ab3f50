// Package menu holds the view state of the party menu: the dish filter, the
// selection store, the two-screen router and the Session that owns them.
// Nothing here touches widgets, so both frontends share it.
package menu

import (
	"strings"

	"golang.org/x/text/cases"

	"partymenu/data"
)

// Query is the full set of list-screen filter parameters.
type Query struct {
	Category   data.MealCategory // active tab
	Text       string            // free-text search against dish names
	ShowVeg    bool
	ShowNonVeg bool
}

// Matches reports whether a single dish passes the query.
func (q Query) Matches(d data.Dish) bool {
	return q.matches(d, foldText(q.Text))
}

func (q Query) matches(d data.Dish, needle string) bool {
	if d.Category != q.Category {
		return false
	}
	switch d.Diet {
	case data.Veg:
		if !q.ShowVeg {
			return false
		}
	case data.NonVeg:
		if !q.ShowNonVeg {
			return false
		}
	default:
		return false
	}
	return needle == "" || strings.Contains(foldText(d.Name), needle)
}

// Filter returns the dishes passing q, in their original order.
// An empty or whitespace-only search text matches every name.
func Filter(dishes []data.Dish, q Query) []data.Dish {
	needle := foldText(q.Text)
	out := []data.Dish{}
	for _, d := range dishes {
		if q.matches(d, needle) {
			out = append(out, d)
		}
	}
	return out
}

// foldText trims s and applies Unicode case folding so "PANEER", "Paneer"
// and "paneer" compare equal.
func foldText(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
