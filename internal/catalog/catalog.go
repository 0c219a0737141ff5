package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Recommendation struct {
	ID    int64  `json:"id" koanf:"id" validate:"gte=0"`
	Title string `json:"title" koanf:"title" validate:"required"`
}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyCategory   = errors.New("category has no recommendations")
	ErrDuplicateID     = errors.New("duplicate recommendation id")
	ErrInvalidRecord   = errors.New("invalid recommendation")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Catalog maps each category to its recommendations. It is never mutated after
// New returns, so concurrent reads need no locking.
type Catalog struct {
	items map[Category][]Recommendation
}

// New copies items into a Catalog after checking that every category is known,
// every list is non-empty and ids are unique within a category.
func New(items map[Category][]Recommendation) (*Catalog, error) {
	out := make(map[Category][]Recommendation, len(items))

	for cat, recs := range items {
		if !cat.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, cat)
		}
		if len(recs) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}

		seen := make(map[int64]struct{}, len(recs))
		for _, r := range recs {
			if err := recordValidator().Struct(r); err != nil {
				return nil, fmt.Errorf("%w: %s id=%d: %v", ErrInvalidRecord, cat, r.ID, err)
			}
			if _, dup := seen[r.ID]; dup {
				return nil, fmt.Errorf("%w: %s id=%d", ErrDuplicateID, cat, r.ID)
			}
			seen[r.ID] = struct{}{}
		}

		out[cat] = slices.Clone(recs)
	}

	return &Catalog{items: out}, nil
}

// Get returns a copy of the category's list in catalog order.
func (c *Catalog) Get(cat Category) ([]Recommendation, bool) {
	recs, ok := c.items[cat]
	if !ok {
		return nil, false
	}
	return slices.Clone(recs), true
}

// Categories returns the populated categories in wire order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.items))
	for _, cat := range Categories() {
		if _, ok := c.items[cat]; ok {
			out = append(out, cat)
		}
	}
	return out
}

// Len returns the number of records across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, recs := range c.items {
		n += len(recs)
	}
	return n
}
