package catalog

import (
	"fmt"
	"strings"
)

// Category is the closed set of book categories. The numeric values are the
// wire numbers of the RPC enum.
type Category int32

const (
	Mystery        Category = 0
	ScienceFiction Category = 1
	SelfHelp       Category = 2
)

var categoryNames = map[Category]string{
	Mystery:        "MYSTERY",
	ScienceFiction: "SCIENCE_FICTION",
	SelfHelp:       "SELF_HELP",
}

// Categories lists every known category in wire order.
func Categories() []Category {
	return []Category{Mystery, ScienceFiction, SelfHelp}
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int32(c))
}

// ParseCategory accepts enum names case-insensitively, with '-' or ' ' standing
// in for '_'.
func ParseCategory(s string) (Category, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)

	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
