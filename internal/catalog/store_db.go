package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	connectTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

const listRecommendationsSQL = `
	SELECT category, id, title
	FROM recommendations
	ORDER BY category ASC, id ASC
`

// LoadPostgres reads the whole catalog once from the recommendations table
// and closes the connection. Expected schema:
//
//	CREATE TABLE recommendations (
//	    category TEXT   NOT NULL,
//	    id       BIGINT NOT NULL,
//	    title    TEXT   NOT NULL,
//	    PRIMARY KEY (category, id)
//	);
func LoadPostgres(ctx context.Context, databaseURL string) (*Catalog, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, err := pgx.Connect(cctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect catalog db: %w", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	return loadRows(ctx, conn)
}

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadRows(ctx context.Context, q rowQuerier) (*Catalog, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := q.Query(qctx, listRecommendationsSQL)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	items := make(map[Category][]Recommendation, len(categoryNames))
	var (
		name string
		rec  Recommendation
	)
	_, err = pgx.ForEachRow(rows, []any{&name, &rec.ID, &rec.Title}, func() error {
		cat, err := ParseCategory(name)
		if err != nil {
			return err
		}
		items[cat] = append(items[cat], rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}

	return New(items)
}
