package catalog

import (
	"context"
	"fmt"
)

const (
	SourceBuiltin  = "builtin"
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

type Source struct {
	Kind        string
	File        string
	DatabaseURL string
}

// Load builds the catalog from the configured source. It runs once at startup.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	switch src.Kind {
	case "", SourceBuiltin:
		return Default(), nil
	case SourceFile:
		return LoadFile(src.File)
	case SourcePostgres:
		return LoadPostgres(ctx, src.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", src.Kind)
	}
}
