package blochviz

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

/*
Gate identifies one entry of the fixed single-qubit gate catalog.
The zero value is not a valid gate.
*/
type Gate int

const (
	GateX Gate = iota + 1
	GateY
	GateZ
	GateH
	GateS
	GateSdg
	GateT
	GateTdg
	GateRx
	GateRy
	GateRz
)

// Matrix is a 2x2 complex matrix acting on (alpha, beta).
type Matrix [2][2]complex128

type gateDef struct {
	label    string
	aliases  []string
	fixed    func() Matrix
	rotation func(theta float64) Matrix
}

var catalog = map[Gate]gateDef{
	GateX:   {label: "x", fixed: pauliX},
	GateY:   {label: "y", fixed: pauliY},
	GateZ:   {label: "z", fixed: pauliZ},
	GateH:   {label: "H", fixed: hadamard},
	GateS:   {label: "S", fixed: phase(math.Pi / 2)},
	GateSdg: {label: "SD", aliases: []string{"sdg", "s†"}, fixed: phase(-math.Pi / 2)},
	GateT:   {label: "T", fixed: phase(math.Pi / 4)},
	GateTdg: {label: "TD", aliases: []string{"tdg", "t†"}, fixed: phase(-math.Pi / 4)},
	GateRx:  {label: "Rx", rotation: rx},
	GateRy:  {label: "Ry", rotation: ry},
	GateRz:  {label: "Rz", rotation: rz},
}

// Gates lists the catalog in button order.
func Gates() []Gate {
	return []Gate{GateX, GateY, GateZ, GateRx, GateRy, GateRz, GateS, GateSdg, GateH, GateT, GateTdg}
}

// ParseGate maps a display label or alias to its gate, ignoring case.
func ParseGate(label string) (Gate, error) {
	needle := strings.ToLower(strings.TrimSpace(label))

	for gate, def := range catalog {
		if strings.ToLower(def.label) == needle {
			return gate, nil
		}
		for _, alias := range def.aliases {
			if alias == needle {
				return gate, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidGate, label)
}

// Valid reports whether g is in the catalog.
func (g Gate) Valid() bool {
	_, ok := catalog[g]
	return ok
}

// Parameterized reports whether the gate takes a rotation angle.
func (g Gate) Parameterized() bool {
	def, ok := catalog[g]
	return ok && def.rotation != nil
}

// Label is the text recorded in the operation history.
func (g Gate) Label() string {
	if def, ok := catalog[g]; ok {
		return def.label
	}
	return fmt.Sprintf("Gate(%d)", int(g))
}

func (g Gate) String() string {
	return g.Label()
}

/*
Matrix returns the unitary for the gate. Fixed gates ignore theta,
rotation gates build exp(-iθσ/2) for their Pauli generator.
*/
func (g Gate) Matrix(theta float64) (Matrix, error) {
	def, ok := catalog[g]
	if !ok {
		return Matrix{}, fmt.Errorf("%w: %d", ErrInvalidGate, int(g))
	}

	if def.rotation == nil {
		return def.fixed(), nil
	}

	if math.IsNaN(theta) || math.Abs(theta) > 2*math.Pi {
		return Matrix{}, fmt.Errorf("%w: %s(%v) outside [-2π, 2π]", ErrInvalidAngle, def.label, theta)
	}

	return def.rotation(theta), nil
}

// Apply left-multiplies the state vector by m.
func (m Matrix) Apply(state QuantumState) QuantumState {
	return QuantumState{
		Alpha: m[0][0]*state.Alpha + m[0][1]*state.Beta,
		Beta:  m[1][0]*state.Alpha + m[1][1]*state.Beta,
	}
}

func pauliX() Matrix {
	return Matrix{
		{0, 1},
		{1, 0},
	}
}

func pauliY() Matrix {
	return Matrix{
		{0, -1i},
		{1i, 0},
	}
}

func pauliZ() Matrix {
	return Matrix{
		{1, 0},
		{0, -1},
	}
}

func hadamard() Matrix {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	h := complex(1/math.Sqrt2, 0)
	return Matrix{
		{h, h},
		{h, -h},
	}
}

// phase builds diag(1, e^{iφ}), which covers S, S†, T and T†.
func phase(phi float64) func() Matrix {
	return func() Matrix {
		return Matrix{
			{1, 0},
			{0, cmplx.Exp(complex(0, phi))},
		}
	}
}

func rx(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return Matrix{
		{c, s},
		{s, c},
	}
}

func ry(theta float64) Matrix {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Matrix{
		{c, -s},
		{s, c},
	}
}

func rz(theta float64) Matrix {
	return Matrix{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}
