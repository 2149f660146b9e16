package common

import "math"

// Epsilon is the shortest camera-to-target distance treated as a real signal.
const Epsilon = 1e-4

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Approx(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
