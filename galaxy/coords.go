package galaxy

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

// MetersToSystem converts meters to region-local simulation units
func MetersToSystem(m float64) float64 {
	return m * parameter.MeterScale
}

// SystemToMeters converts simulation units back to meters
func SystemToMeters(u float64) float64 {
	return u / parameter.MeterScale
}

// AUToSystem converts astronomical units to simulation units
func AUToSystem(au float64) float64 {
	return au * parameter.AUScale
}

// SystemToAU converts simulation units to astronomical units
func SystemToAU(u float64) float64 {
	return u / parameter.AUScale
}

// AroundPos returns a point in the plane of pos at a uniform random angle and
// a uniform random radius below radiusMeters
func AroundPos(rng *rand.Rand, pos vmath.Vec3F, radiusMeters float64) vmath.Vec3F {
	angle := rng.Float64() * 2 * math.Pi
	r := MetersToSystem(rng.Float64() * radiusMeters)
	return vmath.Vec3F{
		X: pos.X + math.Cos(angle)*r,
		Y: pos.Y + math.Sin(angle)*r,
		Z: pos.Z,
	}
}
