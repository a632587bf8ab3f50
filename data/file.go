// partymenu/data/file.go
package data

import (
	"bytes"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// catalogFile mirrors the on-disk layout shared by the YAML and TOML formats.
type catalogFile struct {
	Dishes []struct {
		ID          int     `yaml:"id" toml:"id"`
		Name        string  `yaml:"name" toml:"name"`
		MealType    string  `yaml:"meal_type" toml:"meal_type"`
		Type        string  `yaml:"type" toml:"type"`
		Description string  `yaml:"description" toml:"description"`
		Image       *string `yaml:"image" toml:"image"`
		Ingredients []struct {
			Name string `yaml:"name" toml:"name"`
			Qty  string `yaml:"qty" toml:"qty"`
		} `yaml:"ingredients" toml:"ingredients"`
	} `yaml:"dishes" toml:"dishes"`
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(bytes.NewReader(builtinCatalog)).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding builtin catalog: %w", err)
	}
	return f.toCatalog()
}

// LoadFile reads a catalog from a .yaml, .yml or .toml file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var f catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &f)
	case ".toml":
		err = toml.Unmarshal(raw, &f)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return f.toCatalog()
}

func (f catalogFile) toCatalog() (*Catalog, error) {
	dishes := make([]Dish, 0, len(f.Dishes))
	ingredients := make(map[int][]Ingredient)
	seen := make(map[int]bool, len(f.Dishes))
	for i, fd := range f.Dishes {
		cat, err := ParseMealCategory(fd.MealType)
		if err != nil {
			return nil, fmt.Errorf("dish #%d (%s): %w", i+1, fd.Name, err)
		}
		diet, err := ParseDietType(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("dish #%d (%s): %w", i+1, fd.Name, err)
		}
		d := Dish{
			ID:          fd.ID,
			Name:        fd.Name,
			Category:    cat,
			Diet:        diet,
			Description: fd.Description,
		}
		if fd.Image != nil && *fd.Image != "" {
			d.Image = sql.NullString{String: *fd.Image, Valid: true}
		}
		dishes = append(dishes, d)
		if seen[fd.ID] {
			continue
		}
		seen[fd.ID] = true
		for _, ing := range fd.Ingredients {
			ingredients[fd.ID] = append(ingredients[fd.ID], Ingredient{Name: ing.Name, Quantity: ing.Qty})
		}
	}
	return NewCatalog(dishes, ingredients), nil
}
