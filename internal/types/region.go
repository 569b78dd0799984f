package types

// RegionSet is one region's record set, stored on disk as
// {data_dir}/states/{region_id}.json. Count must always equal
// len(Places); Store.Save enforces it.
type RegionSet struct {
	// RegionID is the catalog key (lowercase, underscores). It is
	// implied by the file name and not written into the file.
	RegionID string `json:"-"`

	DisplayName string  `json:"state"`
	Count       int     `json:"count"`
	Places      []Place `json:"masajid"`
}

// Filter returns a copy of the set containing only the places for which
// keep returns true, with Count recomputed. The receiver is not modified.
func (rs RegionSet) Filter(keep func(Place) bool) RegionSet {
	out := RegionSet{
		RegionID:    rs.RegionID,
		DisplayName: rs.DisplayName,
		Places:      make([]Place, 0, len(rs.Places)),
	}
	for _, p := range rs.Places {
		if keep(p) {
			out.Places = append(out.Places, p)
		}
	}
	out.Count = len(out.Places)
	return out
}

// Index is the derived aggregate over all region files. It is always
// rebuilt from scratch, never patched, so it cannot drift from the
// underlying files. Regions with zero places are excluded.
type Index struct {
	TotalCount   int            `json:"total_count"`
	RegionCounts map[string]int `json:"state_counts"`
	GeneratedAt  string         `json:"generated_at"`
}
