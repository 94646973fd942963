package simulation

// Default stepping constants. Physics advances in FixedDt increments of
// accumulated wall time; each step simulates FixedDt*TimeMultiplier
// seconds so orbits complete at a watchable pace.
const (
	FixedDt        = 0.001
	TimeMultiplier = 100.0

	// MaxFrameDelta caps the wall time credited to a single frame so a
	// stall (window drag, debugger pause) cannot trigger a catch-up
	// spiral of physics steps.
	MaxFrameDelta = 0.1
)

// Clock is the fixed-timestep accumulator: residual unsimulated wall
// time is carried between frames and drained in whole FixedDt steps,
// keeping the physics rate independent of the render rate.
type Clock struct {
	Accumulator    float64
	FixedDt        float64
	TimeMultiplier float64
	MaxFrameDelta  float64
}
