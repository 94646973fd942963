package physics

// Advance moves b one semi-implicit Euler step under the pull of an
// immobile attractor: velocity is updated from the current position,
// then position is updated with the new velocity. The order matters
// for stability on near-circular orbits.
//
// If b sits closer than one world unit to the attractor the whole step
// is skipped, velocity included, so a near-coincident body never hits
// the 1/r^2 blow-up.
func Advance(b *Body, attractor Body, dt float64) {
	d := attractor.Pos.Sub(b.Pos)
	distSq := d.LenSq()
	if distSq < minDistSq {
		return
	}
	accel := G * attractor.Mass / distSq
	b.Vel = b.Vel.Add(d.Normalize().Mul(accel * dt))
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}
