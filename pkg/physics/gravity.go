package physics

import "math"

// G is the gravitational constant in the demo's scaled unit system
// (masses in 1e24 kg, distances compressed to fit on screen). Not SI;
// chosen for a watchable simulation, not physical accuracy.
const G = 6.67430e-1

// minDistSq guards the inverse-square law near coincidence: inside one
// squared world unit no acceleration is applied at all.
const minDistSq = 1.0

// OrbitalVelocity returns the tangential speed of a circular orbit of
// radius r around a mass M: v = sqrt(G*M/r).
func OrbitalVelocity(mass, radius float64) float64 {
	return math.Sqrt(G * mass / radius)
}
