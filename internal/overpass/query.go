package overpass

import (
	"fmt"

	"github.com/masajidusa/pipeline/internal/catalog"
)

// BuildQuery returns the Overpass QL query for all Islamic places of
// worship inside the bounding box, across all three geometry kinds.
// "out center tags" makes the service attach a computed center point to
// way and relation results so the normalizer can treat them uniformly.
// Pure; malformed boxes are the caller's responsibility.
func BuildQuery(box catalog.BBox) string {
	bbox := fmt.Sprintf("(%g,%g,%g,%g)", box.South, box.West, box.North, box.East)
	return fmt.Sprintf(`[out:json][timeout:120];
(
  node["amenity"="place_of_worship"]["religion"="muslim"]%s;
  way["amenity"="place_of_worship"]["religion"="muslim"]%s;
  relation["amenity"="place_of_worship"]["religion"="muslim"]%s;
);
out center tags;
`, bbox, bbox, bbox)
}
