package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// regionSchema is the structural contract for a region file. It checks
// shape and required fields; the count and uniqueness invariants need
// cross-field logic and are checked separately in checkInvariants.
const regionSchema = `{
  "type": "object",
  "required": ["state", "count", "masajid"],
  "properties": {
    "state": {"type": "string", "minLength": 1},
    "count": {"type": "integer", "minimum": 0},
    "masajid": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "coordinates", "osm_type", "osm_id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "osm_type": {"enum": ["node", "way", "relation"]},
          "osm_id": {"type": "integer"},
          "coordinates": {
            "type": "object",
            "required": ["lat", "lon"],
            "properties": {
              "lat": {"type": "number"},
              "lon": {"type": "number"}
            }
          }
        }
      }
    }
  }
}`

var compiledRegionSchema = mustCompile(regionSchema)

func mustCompile(src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("region.json", strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("store: failed to load region schema: %v", err))
	}
	schema, err := compiler.Compile("region.json")
	if err != nil {
		panic(fmt.Sprintf("store: failed to compile region schema: %v", err))
	}
	return schema
}

// validateRegionJSON checks raw file content against the region schema.
func validateRegionJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledRegionSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}
