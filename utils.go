package image3d

import "math"

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in image3d use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// WrapAngle wraps an angle in radians into [0, 2*Pi).
func WrapAngle(angle float64) float64 {
	tau := 2 * math.Pi
	angle = math.Mod(angle, tau)
	if angle < 0 {
		angle += tau
	}
	// math.Mod of a tiny negative number can land exactly on tau after the addition.
	if angle >= tau {
		angle = 0
	}
	return angle
}
