package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Screen identifies one of the two logical screens.
type Screen int

const (
	ListScreen Screen = iota
	DetailScreen
)

func (s Screen) String() string {
	switch s {
	case ListScreen:
		return "list"
	case DetailScreen:
		return "detail"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Route is a screen plus its parameter. DishID is only meaningful on DetailScreen.
// BadID holds the raw segment of a detail address whose id is not a number;
// such a route never resolves to a dish.
type Route struct {
	Screen Screen
	DishID int
	BadID  string
}

// HasDish reports whether the route names a dish by a numeric id.
func (r Route) HasDish() bool {
	return r.Screen == DetailScreen && r.BadID == ""
}

const detailPrefix = "/ingredient/"

// Location renders the route as a shareable address: "/" or "/ingredient/{id}".
func (r Route) Location() string {
	if r.Screen == DetailScreen {
		if r.BadID != "" {
			return detailPrefix + r.BadID
		}
		return detailPrefix + strconv.Itoa(r.DishID)
	}
	return "/"
}

// ParseLocation is the inverse of Route.Location. Any non-empty segment after
// /ingredient/ is a detail route; one that is not a number lands in BadID.
func ParseLocation(loc string) (Route, error) {
	loc = strings.TrimSpace(loc)
	if loc == "" || loc == "/" {
		return Route{Screen: ListScreen}, nil
	}
	rest, ok := strings.CutPrefix(loc, detailPrefix)
	if !ok {
		return Route{}, fmt.Errorf("unknown location %q", loc)
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("unknown location %q", loc)
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return Route{Screen: DetailScreen, BadID: rest}, nil
	}
	return Route{Screen: DetailScreen, DishID: id}, nil
}

// Router tracks the current route and the history used by Back.
// The zero value starts on the list screen.
type Router struct {
	current Route
	history []Route
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.current
}

// OpenDetail pushes the detail route for dishID.
func (r *Router) OpenDetail(dishID int) {
	r.push(Route{Screen: DetailScreen, DishID: dishID})
}

// Navigate goes to loc. Locations outside / and /ingredient/ land on the list
// screen and return an error.
func (r *Router) Navigate(loc string) error {
	route, err := ParseLocation(loc)
	if err != nil {
		r.push(Route{Screen: ListScreen})
		return err
	}
	r.push(route)
	return nil
}

// Back returns to the previous route, like a browser's back button, even when
// the current screen is the list. With no history it goes to the list screen.
func (r *Router) Back() {
	if n := len(r.history); n > 0 {
		r.current = r.history[n-1]
		r.history = r.history[:n-1]
		return
	}
	r.current = Route{Screen: ListScreen}
}

func (r *Router) push(next Route) {
	if next == r.current {
		return
	}
	r.history = append(r.history, r.current)
	r.current = next
}
