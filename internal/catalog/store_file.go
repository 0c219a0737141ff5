package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileCatalog is the on-disk shape:
//
//	categories:
//	  MYSTERY:
//	    - id: 1
//	      title: The Maltese Falcon
type fileCatalog struct {
	Categories map[string][]Recommendation `koanf:"categories"`
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog file %s: %w", path, err)
	}

	var fc fileCatalog
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}

	items := make(map[Category][]Recommendation, len(fc.Categories))
	for name, recs := range fc.Categories {
		cat, err := ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
		items[cat] = append(items[cat], recs...)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
