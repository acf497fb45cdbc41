package common

const (
	// TileSize is the edge length of a map tile in pixels.
	TileSize = 8

	BaseWidth  = 160
	BaseHeight = 144
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp bounds v to [lo, hi].
func Clamp[T ~int | ~int16 | ~int32 | ~int64 | ~float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
