package blochviz

import (
	"fmt"
	"math"
	"math/cmplx"
)

type QuantumState struct {
	Alpha complex128 // |0⟩ amplitude
	Beta  complex128 // |1⟩ amplitude
}

// Zero is the |0⟩ state every session starts from.
func Zero() QuantumState {
	return QuantumState{Alpha: 1, Beta: 0}
}

// Norm returns sqrt(|alpha|² + |beta|²).
func (qs QuantumState) Norm() float64 {
	return math.Sqrt(qs.normSquared())
}

func (qs QuantumState) normSquared() float64 {
	a := cmplx.Abs(qs.Alpha)
	b := cmplx.Abs(qs.Beta)
	return a*a + b*b
}

// Normalize divides both amplitudes by the norm. A zero vector is returned as-is.
func (qs QuantumState) Normalize() QuantumState {
	n := qs.Norm()
	if n == 0 {
		return qs
	}

	scale := complex(1/n, 0)
	return QuantumState{
		Alpha: qs.Alpha * scale,
		Beta:  qs.Beta * scale,
	}
}

/*
EquivalentTo reports whether two states differ only by a global phase,
i.e. |⟨qs|other⟩| is 1 within tolerance.
*/
func (qs QuantumState) EquivalentTo(other QuantumState, tolerance float64) bool {
	overlap := cmplx.Conj(qs.Alpha)*other.Alpha + cmplx.Conj(qs.Beta)*other.Beta
	return math.Abs(cmplx.Abs(overlap)-1) <= tolerance
}

func (qs QuantumState) String() string {
	return fmt.Sprintf("(%.4f)|0⟩ + (%.4f)|1⟩", qs.Alpha, qs.Beta)
}
