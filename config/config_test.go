package config

import (
	"testing"

	log "github.com/sirupsen/logrus"

	"partymenu/data"
)

var menuVars = []string{
	"MENU_CATALOG_SOURCE", "MENU_CATALOG_FILE", "MENU_DB_DSN", "MENU_DEFAULT_CATEGORY",
	"MENU_FRONTEND", "MENU_LOG_LEVEL", "MENU_LOG_FILE",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
}

// clearEnv blanks every variable Load reads; getEnv treats "" as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range menuVars {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Catalog.Kind != data.SourceBuiltin {
			t.Errorf("Catalog.Kind = %q, want builtin", cfg.Catalog.Kind)
		}
		if cfg.DefaultCategory != data.MainCourse {
			t.Errorf("DefaultCategory = %q, want MAIN COURSE", cfg.DefaultCategory)
		}
		if cfg.Frontend != FrontendDesktop {
			t.Errorf("Frontend = %q, want desktop", cfg.Frontend)
		}
		if cfg.LogLevel != log.InfoLevel {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MENU_CATALOG_SOURCE", "SQLite")
		t.Setenv("MENU_DB_DSN", "/tmp/menu.db")
		t.Setenv("MENU_DEFAULT_CATEGORY", "starter")
		t.Setenv("MENU_FRONTEND", "terminal")
		t.Setenv("MENU_LOG_LEVEL", "debug")
		t.Setenv("MENU_LOG_FILE", "/tmp/menu.log")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := data.Source{Kind: data.SourceSQLite, DSN: "/tmp/menu.db"}
		if cfg.Catalog != want {
			t.Errorf("Catalog = %+v, want %+v", cfg.Catalog, want)
		}
		if cfg.DefaultCategory != data.Starter || cfg.Frontend != FrontendTerminal || cfg.LogLevel != log.DebugLevel || cfg.LogFile != "/tmp/menu.log" {
			t.Errorf("Load() = %+v", cfg)
		}
	})

	t.Run("MySQLDSNFromParts", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MENU_CATALOG_SOURCE", "mysql")
		t.Setenv("DB_USER", "u")
		t.Setenv("DB_PASSWORD", "p")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "3405")
		t.Setenv("DB_NAME", "menu")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := "u:p@tcp(db:3405)/menu?parseTime=true&charset=utf8mb4"
		if cfg.Catalog.DSN != want {
			t.Errorf("DSN = %q, want %q", cfg.Catalog.DSN, want)
		}
	})

	errorCases := []struct {
		name string
		env  map[string]string
	}{
		{"UnknownSource", map[string]string{"MENU_CATALOG_SOURCE": "csv"}},
		{"FileWithoutPath", map[string]string{"MENU_CATALOG_SOURCE": "file"}},
		{"PostgresWithoutDSN", map[string]string{"MENU_CATALOG_SOURCE": "postgres"}},
		{"BadCategory", map[string]string{"MENU_DEFAULT_CATEGORY": "BRUNCH"}},
		{"BadFrontend", map[string]string{"MENU_FRONTEND": "web"}},
		{"BadLogLevel", map[string]string{"MENU_LOG_LEVEL": "loud"}},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("Expected an error, got nil")
			}
		})
	}
}
