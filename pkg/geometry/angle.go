package geometry

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle brings theta into [0, 2Pi) with a single correction.
// Inputs further than one turn outside the range are not folded further,
// callers keep per-tick rotations below a full turn.
func NormalizeAngle(theta float64) float64 {
	if theta < 0 {
		theta += TwoPi
	}
	if theta >= TwoPi {
		theta -= TwoPi
	}
	return theta
}

// WrapToPi maps theta into (-Pi, Pi], the shortest signed rotation.
func WrapToPi(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta > math.Pi {
		theta -= TwoPi
	} else if theta <= -math.Pi {
		theta += TwoPi
	}
	return theta
}

// Clamp limits v to [-limit, limit]. A non-positive limit disables clamping.
func Clamp(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}
