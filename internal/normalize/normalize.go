// Package normalize maps raw Overpass elements into uniform Place
// records. Normalization is pure and idempotent: the same element always
// produces the same record, keyed by "{type}_{id}".
package normalize

import (
	"fmt"

	"github.com/masajidusa/pipeline/internal/catalog"
	"github.com/masajidusa/pipeline/internal/overpass"
	"github.com/masajidusa/pipeline/internal/types"
)

// UnknownName is the sentinel used when the source has no name tag in
// any language. The cleanup operation may purge these depending on
// configuration; the fetch path still emits them.
const UnknownName = "Unknown Masjid"

// Element converts a raw element into a Place. Returns nil when no
// coordinate is resolvable — expected noise in upstream data, dropped
// silently rather than treated as an error.
func Element(el overpass.Element, regionID string) *types.Place {
	coords, ok := resolveCoordinates(el)
	if !ok {
		return nil
	}

	return &types.Place{
		ID:           fmt.Sprintf("%s_%d", el.Type, el.ID),
		Name:         resolveName(el),
		Address:      resolveAddress(el, regionID),
		Phone:        contactTag(el, "phone"),
		Website:      contactTag(el, "website"),
		Email:        contactTag(el, "email"),
		Coordinates:  coords,
		Denomination: el.Tag("denomination"),
		OpeningHours: el.Tag("opening_hours"),
		OSMType:      el.Type,
		OSMID:        el.ID,
	}
}

// resolveCoordinates picks the element's own position for nodes and the
// computed center for ways and relations.
func resolveCoordinates(el overpass.Element) (types.Coordinates, bool) {
	if el.Type == types.GeometryNode {
		if el.Lat == nil || el.Lon == nil {
			return types.Coordinates{}, false
		}
		return types.Coordinates{Lat: *el.Lat, Lon: *el.Lon}, true
	}
	if el.Center == nil {
		return types.Coordinates{}, false
	}
	return types.Coordinates{Lat: el.Center.Lat, Lon: el.Center.Lon}, true
}

// resolveName walks the fallback chain: primary name, English name,
// Arabic name, sentinel.
func resolveName(el overpass.Element) string {
	for _, key := range []string{"name", "name:en", "name:ar"} {
		if v := el.Tag(key); v != "" {
			return v
		}
	}
	return UnknownName
}

// resolveAddress composes the structured address. Street joins house
// number and street name when both exist; state falls back to the
// region's display name when the source has no addr:state tag.
func resolveAddress(el overpass.Element, regionID string) types.Address {
	houseNumber := el.Tag("addr:housenumber")
	street := el.Tag("addr:street")
	switch {
	case houseNumber != "" && street != "":
		street = houseNumber + " " + street
	case street == "" && houseNumber != "":
		street = houseNumber
	case street == "":
		street = el.Tag("addr:full")
	}

	state := el.Tag("addr:state")
	if state == "" {
		state = catalog.DisplayName(regionID)
	}

	return types.Address{
		Street: street,
		City:   el.Tag("addr:city"),
		State:  state,
		Zip:    el.Tag("addr:postcode"),
		Full:   el.Tag("addr:full"),
	}
}

// contactTag prefers the direct tag over its "contact:"-namespaced twin.
func contactTag(el overpass.Element, key string) string {
	if v := el.Tag(key); v != "" {
		return v
	}
	return el.Tag("contact:" + key)
}
