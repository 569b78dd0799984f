package catalog

// USStates returns the default catalog: the 50 US states plus the
// District of Columbia, with approximate bounding boxes. Boxes
// intentionally overlap at borders; the composite place id de-duplicates
// anything fetched twice.
func USStates() Catalog {
	return Catalog{
		"alabama":              {South: 30.2, West: -88.5, North: 35.0, East: -84.9},
		"alaska":               {South: 51.2, West: -179.1, North: 71.4, East: -129.9},
		"arizona":              {South: 31.3, West: -114.8, North: 37.0, East: -109.0},
		"arkansas":             {South: 33.0, West: -94.6, North: 36.5, East: -89.6},
		"california":           {South: 32.5, West: -124.4, North: 42.0, East: -114.1},
		"colorado":             {South: 37.0, West: -109.1, North: 41.0, East: -102.0},
		"connecticut":          {South: 40.9, West: -73.7, North: 42.1, East: -71.8},
		"delaware":             {South: 38.4, West: -75.8, North: 39.8, East: -75.0},
		"florida":              {South: 24.5, West: -87.6, North: 31.0, East: -80.0},
		"georgia":              {South: 30.4, West: -85.6, North: 35.0, East: -80.8},
		"hawaii":               {South: 18.9, West: -160.2, North: 22.2, East: -154.8},
		"idaho":                {South: 42.0, West: -117.2, North: 49.0, East: -111.0},
		"illinois":             {South: 36.9, West: -91.5, North: 42.5, East: -87.5},
		"indiana":              {South: 37.8, West: -88.1, North: 41.8, East: -84.8},
		"iowa":                 {South: 40.4, West: -96.6, North: 43.5, East: -90.1},
		"kansas":               {South: 37.0, West: -102.1, North: 40.0, East: -94.6},
		"kentucky":             {South: 36.5, West: -89.6, North: 39.1, East: -82.0},
		"louisiana":            {South: 28.9, West: -94.0, North: 33.0, East: -89.0},
		"maine":                {South: 43.0, West: -71.1, North: 47.5, East: -66.9},
		"maryland":             {South: 37.9, West: -79.5, North: 39.7, East: -75.0},
		"massachusetts":        {South: 41.2, West: -73.5, North: 42.9, East: -70.0},
		"michigan":             {South: 41.7, West: -90.4, North: 48.2, East: -82.4},
		"minnesota":            {South: 43.5, West: -97.2, North: 49.4, East: -89.5},
		"mississippi":          {South: 30.2, West: -91.7, North: 35.0, East: -88.1},
		"missouri":             {South: 36.0, West: -95.8, North: 40.6, East: -89.1},
		"montana":              {South: 44.4, West: -116.0, North: 49.0, East: -104.0},
		"nebraska":             {South: 40.0, West: -104.1, North: 43.0, East: -95.3},
		"nevada":               {South: 35.0, West: -120.0, North: 42.0, East: -114.0},
		"new_hampshire":        {South: 42.7, West: -72.6, North: 45.3, East: -70.7},
		"new_jersey":           {South: 38.9, West: -75.6, North: 41.4, East: -73.9},
		"new_mexico":           {South: 31.3, West: -109.1, North: 37.0, East: -103.0},
		"new_york":             {South: 40.5, West: -79.8, North: 45.0, East: -71.9},
		"north_carolina":       {South: 33.8, West: -84.3, North: 36.6, East: -75.5},
		"north_dakota":         {South: 45.9, West: -104.0, North: 49.0, East: -96.6},
		"ohio":                 {South: 38.4, West: -84.8, North: 42.0, East: -80.5},
		"oklahoma":             {South: 33.6, West: -103.0, North: 37.0, East: -94.4},
		"oregon":               {South: 42.0, West: -124.6, North: 46.3, East: -116.5},
		"pennsylvania":         {South: 39.7, West: -80.5, North: 42.3, East: -74.7},
		"rhode_island":         {South: 41.1, West: -71.9, North: 42.0, East: -71.1},
		"south_carolina":       {South: 32.0, West: -83.4, North: 35.2, East: -78.5},
		"south_dakota":         {South: 42.5, West: -104.1, North: 46.0, East: -96.4},
		"tennessee":            {South: 35.0, West: -90.3, North: 36.7, East: -81.6},
		"texas":                {South: 25.8, West: -106.6, North: 36.5, East: -93.5},
		"utah":                 {South: 37.0, West: -114.1, North: 42.0, East: -109.0},
		"vermont":              {South: 42.7, West: -73.4, North: 45.0, East: -71.5},
		"virginia":             {South: 36.5, West: -83.7, North: 39.5, East: -75.2},
		"washington":           {South: 45.5, West: -124.8, North: 49.0, East: -116.9},
		"west_virginia":        {South: 37.2, West: -82.6, North: 40.6, East: -77.7},
		"wisconsin":            {South: 42.5, West: -92.9, North: 47.1, East: -86.8},
		"wyoming":              {South: 41.0, West: -111.1, North: 45.0, East: -104.1},
		"district_of_columbia": {South: 38.8, West: -77.1, North: 39.0, East: -76.9},
	}
}
