package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"partymenu/data"
)

// Frontends.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// Config is the application configuration read from the environment.
type Config struct {
	Catalog         data.Source
	DefaultCategory data.MealCategory
	Frontend        string
	LogLevel        log.Level
	LogFile         string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	src := data.Source{
		Kind: strings.ToLower(getEnv("MENU_CATALOG_SOURCE", data.SourceBuiltin)),
		File: getEnv("MENU_CATALOG_FILE", ""),
		DSN:  getEnv("MENU_DB_DSN", ""),
	}
	switch src.Kind {
	case data.SourceBuiltin:
	case data.SourceFile:
		if src.File == "" {
			return nil, fmt.Errorf("MENU_CATALOG_FILE must be set when MENU_CATALOG_SOURCE=file")
		}
	case data.SourceMySQL:
		if src.DSN == "" {
			src.DSN = mysqlDSN()
		}
	case data.SourceSQLite, data.SourcePostgres:
		if src.DSN == "" {
			return nil, fmt.Errorf("MENU_DB_DSN must be set when MENU_CATALOG_SOURCE=%s", src.Kind)
		}
	default:
		return nil, fmt.Errorf("invalid MENU_CATALOG_SOURCE %q", src.Kind)
	}

	category, err := data.ParseMealCategory(getEnv("MENU_DEFAULT_CATEGORY", string(data.MainCourse)))
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_DEFAULT_CATEGORY: %w", err)
	}

	frontend := strings.ToLower(getEnv("MENU_FRONTEND", FrontendDesktop))
	if frontend != FrontendDesktop && frontend != FrontendTerminal {
		return nil, fmt.Errorf("invalid MENU_FRONTEND %q", frontend)
	}

	level, err := log.ParseLevel(getEnv("MENU_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_LOG_LEVEL: %w", err)
	}

	return &Config{
		Catalog:         src,
		DefaultCategory: category,
		Frontend:        frontend,
		LogLevel:        level,
		LogFile:         getEnv("MENU_LOG_FILE", ""),
	}, nil
}

// mysqlDSN assembles a go-sql-driver DSN from the DB_* variables.
func mysqlDSN() string {
	port, err := strconv.Atoi(getEnv("DB_PORT", "3306"))
	if err != nil {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		getEnv("DB_USER", "menu_user"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "127.0.0.1"),
		port,
		getEnv("DB_NAME", "menu_db"),
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
