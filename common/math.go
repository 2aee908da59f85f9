package common

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins, so a
// container smaller than the entity pins it to the origin.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
