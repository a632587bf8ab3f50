package menu

import (
	"sort"

	"partymenu/data"
)

// Selection is the set of chosen dish IDs. Membership is binary; the only
// mutation is Toggle. The zero value is an empty selection.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[int]struct{})}
}

// Toggle adds id if absent, removes it otherwise, and returns the new state.
func (s *Selection) Toggle(id int) bool {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// IsSelected reports whether id is in the selection.
func (s *Selection) IsSelected(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Total returns the number of selected IDs.
func (s *Selection) Total() int {
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// CountsByCategory counts selected dishes per meal category. Every category is
// present in the result, zero included. IDs that no longer resolve to a dish
// in c are left out.
func (s *Selection) CountsByCategory(c *data.Catalog) map[data.MealCategory]int {
	counts := make(map[data.MealCategory]int, len(data.MealCategories()))
	for _, m := range data.MealCategories() {
		counts[m] = 0
	}
	for id := range s.ids {
		d, ok := c.Dish(id)
		if !ok {
			continue
		}
		counts[d.Category]++
	}
	return counts
}
