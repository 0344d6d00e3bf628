package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/bettercombat/hitbox/utils"
)

// FromPolar returns the unit look vector for a pitch and yaw in degrees. Pitch is the elevation
// angle, positive looking down; yaw is the heading, with yaw 0 facing +Z and yaw 90 facing -X.
// The Y axis is up.
func FromPolar(pitch, yaw float64) r3.Vector {
	heading := -utils.DegToRad(yaw) - math.Pi
	elevation := -utils.DegToRad(pitch)
	horizontal := -math.Cos(elevation)
	return r3.Vector{
		X: math.Sin(heading) * horizontal,
		Y: math.Sin(elevation),
		Z: math.Cos(heading) * horizontal,
	}
}
