// Package catalog maps region identifiers to the bounding boxes used to
// partition upstream queries. The table is plain configuration data: the
// pipeline takes a Catalog as input and never assumes a particular
// decomposition, so a country-level table can be swapped in without
// touching the fetch path.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// BBox is a geographic bounding box in decimal degrees.
type BBox struct {
	South float64 `mapstructure:"south" yaml:"south"`
	West  float64 `mapstructure:"west" yaml:"west"`
	North float64 `mapstructure:"north" yaml:"north"`
	East  float64 `mapstructure:"east" yaml:"east"`
}

// Catalog is a region id → bounding box table. Region ids are stable
// lowercase identifiers with underscores (e.g. "new_jersey").
type Catalog map[string]BBox

// Regions returns the region ids in sorted order. Processing order is
// deterministic so interrupted runs resume predictably.
func (c Catalog) Regions() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the bounding box for a region id.
func (c Catalog) Lookup(id string) (BBox, error) {
	box, ok := c[id]
	if !ok {
		return BBox{}, fmt.Errorf("unknown region %q", id)
	}
	return box, nil
}

// DisplayName converts a region id to its human-readable form:
// underscores become spaces and each word is title-cased
// ("new_jersey" → "New Jersey").
func DisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeID converts user input to a region id ("New Jersey" → "new_jersey").
func NormalizeID(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
