package schema

type Geometry struct {
	Type        string      `json:"type" bson:"type"`
	Coordinates interface{} `json:"coordinates" bson:"coordinates"`
}

// Boundary is a row of the world boundary table
type Boundary struct {
	Sovereignt string   `json:"sovereignt"`
	SovA3      string   `json:"sov_a3"`
	Level      int      `json:"level"`
	AdmISO     string   `json:"adm0_iso"`
	Admin      string   `json:"admin"`
	Name       string   `json:"name"`
	NameLong   string   `json:"name_long"`
	BrkA3      string   `json:"brk_a3"`
	BrkName    string   `json:"brk_name"`
	Abbrev     string   `json:"abbrev"`
	Geometry   Geometry `json:"geometry"`
}
