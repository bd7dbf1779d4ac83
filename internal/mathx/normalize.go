// Package mathx holds small math helpers shared across the generator.
package mathx

// Normalize maps value from the range [min, max] to [0, 1]. A degenerate
// range (min == max, e.g. a constant noise field) maps to 0 instead of
// dividing by zero.
func Normalize(value, min, max float64) float64 {
	if min == max {
		return 0
	}
	return (value - min) / (max - min)
}
