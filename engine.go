// engine.go
package blochviz

import (
	"fmt"
	"math"

	"github.com/davecgh/go-spew/spew"
	"github.com/theapemachine/errnie"
)

/*
Engine owns the single-qubit state of a session. Gates are applied in the
order received; there is no concurrent access, so the engine does no locking.
*/
type Engine struct {
	state     QuantumState
	tolerance float64
}

func NewEngine(opts ...Option) *Engine {
	cfg := applyOptions(opts)
	return &Engine{
		state:     Zero(),
		tolerance: cfg.Tolerance,
	}
}

// Reset puts the engine back to |0⟩.
func (e *Engine) Reset() {
	e.state = Zero()
}

// State returns the current state by value.
func (e *Engine) State() QuantumState {
	return e.state
}

/*
Apply left-multiplies the current state by the gate's unitary and returns
the new state. theta is only read for Rx, Ry and Rz and must lie in
[-2π, 2π]. On error the state is left untouched.
*/
func (e *Engine) Apply(gate Gate, theta float64) (QuantumState, error) {
	m, err := gate.Matrix(theta)
	if err != nil {
		return e.state, err
	}

	raw := m.Apply(e.state)

	if drift := math.Abs(raw.Norm() - 1); drift > e.tolerance {
		panic(fmt.Sprintf(
			"blochviz: norm invariant violated after %s: drift %g\n%s",
			gate, drift, spew.Sdump(e.state, raw),
		))
	}

	next := raw.Normalize()

	errnie.Debug("engine applied %s theta=%v state=%v", gate, theta, next)

	e.state = next
	return next, nil
}
