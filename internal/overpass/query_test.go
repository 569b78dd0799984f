package overpass

import (
	"strings"
	"testing"

	"github.com/masajidusa/pipeline/internal/catalog"
)

func TestBuildQuery(t *testing.T) {
	box := catalog.BBox{South: 38.9, West: -75.6, North: 41.4, East: -73.9}
	query := BuildQuery(box)

	for _, want := range []string{
		`[out:json][timeout:120];`,
		`node["amenity"="place_of_worship"]["religion"="muslim"](38.9,-75.6,41.4,-73.9);`,
		`way["amenity"="place_of_worship"]["religion"="muslim"](38.9,-75.6,41.4,-73.9);`,
		`relation["amenity"="place_of_worship"]["religion"="muslim"](38.9,-75.6,41.4,-73.9);`,
		`out center tags;`,
	} {
		if !strings.Contains(query, want) {
			t.Errorf("BuildQuery() missing %q in:\n%s", want, query)
		}
	}
}

func TestBuildQueryDeterministic(t *testing.T) {
	box := catalog.BBox{South: 24.5, West: -87.6, North: 31.0, East: -80.0}
	if BuildQuery(box) != BuildQuery(box) {
		t.Error("BuildQuery() not deterministic for identical input")
	}
}
