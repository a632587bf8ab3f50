// partymenu/data/db.go
package data

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Expected schema:
//
//	dishes(id, name, meal_type, diet_type, description, image)
//	ingredients(dish_id, position, name, qty)
//
// The queries take no parameters so the same text runs on every driver.
const (
	queryDishes = `
		SELECT id, name, meal_type, diet_type, description, image
		FROM dishes
		ORDER BY id
	`
	queryIngredients = `
		SELECT dish_id, name, qty
		FROM ingredients
		ORDER BY dish_id, position
	`
)

// sqlDrivers maps catalog source names to registered database/sql driver names.
var sqlDrivers = map[string]string{
	"mysql":    "mysql",
	"sqlite":   "sqlite",
	"postgres": "pgx",
}

// OpenDB opens and pings a catalog database. driver is one of "mysql",
// "sqlite" or "postgres".
func OpenDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	name, ok := sqlDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported catalog driver %q", driver)
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", driver, err)
	}
	if pingErr := db.PingContext(ctx); pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("cannot ping %s: %w", driver, pingErr)
	}
	return db, nil
}

// LoadDB reads every dish and ingredient row into a Catalog. Rows with an
// unknown meal or diet type are logged and skipped.
func LoadDB(ctx context.Context, db *sql.DB) (*Catalog, error) {
	dishes, err := dbGetAllDishes(ctx, db)
	if err != nil {
		return nil, err
	}
	ingredients, err := dbGetAllIngredients(ctx, db)
	if err != nil {
		return nil, err
	}
	return NewCatalog(dishes, ingredients), nil
}

func dbGetAllDishes(ctx context.Context, db *sql.DB) ([]Dish, error) {
	rows, err := db.QueryContext(ctx, queryDishes)
	if err != nil {
		return nil, fmt.Errorf("querying dishes: %w", err)
	}
	defer rows.Close()

	var list []Dish
	for rows.Next() {
		var (
			d          Dish
			meal, diet string
			desc       sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Name, &meal, &diet, &desc, &d.Image); err != nil {
			log.Printf("Error scanning dish row: %v", err)
			continue
		}
		if d.Category, err = ParseMealCategory(meal); err != nil {
			log.WithField("dish_id", d.ID).Warnf("Skipping dish: %v", err)
			continue
		}
		if d.Diet, err = ParseDietType(diet); err != nil {
			log.WithField("dish_id", d.ID).Warnf("Skipping dish: %v", err)
			continue
		}
		d.Description = desc.String
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading dishes: %w", err)
	}
	return list, nil
}

func dbGetAllIngredients(ctx context.Context, db *sql.DB) (map[int][]Ingredient, error) {
	rows, err := db.QueryContext(ctx, queryIngredients)
	if err != nil {
		return nil, fmt.Errorf("querying ingredients: %w", err)
	}
	defer rows.Close()

	result := make(map[int][]Ingredient)
	for rows.Next() {
		var (
			dishID int
			ing    Ingredient
		)
		if err := rows.Scan(&dishID, &ing.Name, &ing.Quantity); err != nil {
			log.Printf("Error scanning ingredient row: %v", err)
			continue
		}
		result[dishID] = append(result[dishID], ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading ingredients: %w", err)
	}
	return result, nil
}
