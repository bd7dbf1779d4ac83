// Package cell defines the sample stored at a single point of a world map.
package cell

// Cell holds the two factors generated for a point on the map. Both are
// conventionally normalized to 0-1 before coloring, but the type itself
// does not enforce a range; that is a pipeline contract.
type Cell struct {
	// Elevation is the terrain height at this point.
	Elevation float64
	// Moisture is the moisture level at this point.
	Moisture float64
}
