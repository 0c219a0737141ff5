// Package recommendations serves random book recommendations from a static
// catalog over gRPC.
package recommendations

import (
	"context"
	"errors"
	"math/rand/v2"

	"BookMarket/internal/catalog"
)

// ErrCategoryNotFound is a client error: the caller asked for a category the
// catalog does not hold.
var ErrCategoryNotFound = errors.New("category not found")

type Request struct {
	UserID     int64
	Category   catalog.Category
	MaxResults int
}

// Service is stateless apart from the read-only catalog and is safe for
// concurrent use.
type Service struct {
	catalog *catalog.Catalog
	intN    func(n int) int
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c, intN: rand.IntN}
}

// Recommend returns min(MaxResults, len(list)) distinct records drawn
// uniformly from the category's list. Negative MaxResults yields none. UserID
// is accepted but unused.
func (s *Service) Recommend(_ context.Context, req Request) ([]catalog.Recommendation, error) {
	recs, ok := s.catalog.Get(req.Category)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	n := min(max(req.MaxResults, 0), len(recs))
	return sample(recs, n, s.intN), nil
}
