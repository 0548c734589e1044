package forest

// Coordinates is a geographic position echoed back with a record.
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// TreeRecord is caller-owned data for one adopted tree. The engine reads ID,
// Name and Species; everything else is carried through untouched so the
// caller gets it back on selection. Records are never mutated.
type TreeRecord struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Species      string      `yaml:"species"`
	Location     string      `yaml:"location"`
	AdoptedDate  string      `yaml:"adoptedDate"`
	LastUpdate   string      `yaml:"lastUpdate"`
	Height       string      `yaml:"height"`
	CO2Absorbed  string      `yaml:"co2Absorbed"`
	Image        string      `yaml:"image"`
	Coordinates  Coordinates `yaml:"coordinates"`
	HealthStatus string      `yaml:"healthStatus"`
}

// displayLabel is the text drawn in the selection label: the ID, or the
// name when names is set and the record has one.
func (r *TreeRecord) displayLabel(names bool) string {
	if names && r.Name != "" {
		return r.Name
	}
	return r.ID
}

// TreeInstance is one procedurally generated tree ready to be drawn. It is a
// plain value: all draw behavior lives in free functions keyed by Strategy.
//
// X is the trunk's horizontal center and Y its base. Width is always
// Height/3. SwayPhase and SwaySpeed are fixed when the instance is created.
type TreeInstance struct {
	ID        string
	Label     string
	X, Y      float64
	Height    float64
	Width     float64
	Color     Color
	SwayPhase float64
	SwaySpeed float64
	Strategy  Strategy

	// record is the index into the record slice the instance was built from,
	// or -1 for ambient trees.
	record int
}

// CanopyAnchor returns the point hit testing and the selection highlight are
// centered on.
func (t *TreeInstance) CanopyAnchor() Vec2 {
	return Vec2{X: t.X, Y: t.Y - t.Height/3}
}
