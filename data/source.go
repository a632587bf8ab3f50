package data

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Source kinds understood by Load.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceMySQL    = "mysql"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Source says where the catalog comes from.
type Source struct {
	Kind string
	File string // for SourceFile
	DSN  string // for the SQL kinds
}

// Load reads the catalog from src. It is called once at startup.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)
	switch src.Kind {
	case SourceBuiltin, "":
		c, err = Builtin()
	case SourceFile:
		c, err = LoadFile(src.File)
	case SourceMySQL, SourceSQLite, SourcePostgres:
		db, openErr := OpenDB(ctx, src.Kind, src.DSN)
		if openErr != nil {
			return nil, openErr
		}
		defer db.Close()
		c, err = LoadDB(ctx, db)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", src.Kind)
	}
	if err != nil {
		return nil, err
	}
	log.WithField("source", src.Kind).Infof("Loaded catalog with %d dishes", c.Len())
	return c, nil
}
