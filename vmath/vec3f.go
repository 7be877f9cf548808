package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for simulation-space positions and velocities
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FNeg(v Vec3F) Vec3F {
	return Vec3F{-v.X, -v.Y, -v.Z}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FNormalize returns the unit vector of v, zero vector for zero input
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates from a to b by t, unclamped
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FIsZero reports whether all components are exactly zero
func V3FIsZero(v Vec3F) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// V3FClampMag shortens v to at most max length
func V3FClampMag(v Vec3F, max float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= max*max || magSq == 0 {
		return v
	}
	return V3FScale(v, max/math.Sqrt(magSq))
}
