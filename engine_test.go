package blochviz

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const testTolerance = 1e-9

func TestEngine(t *testing.T) {
	Convey("Given a new engine", t, func() {
		engine := NewEngine()

		Convey("It should start in |0⟩", func() {
			So(engine.State(), ShouldResemble, Zero())
		})

		Convey("When applying self-inverse gates twice", func() {
			for _, gate := range []Gate{GateX, GateY, GateZ, GateH} {
				engine.Reset()
				_, err := engine.Apply(GateH, 0)
				So(err, ShouldBeNil)
				_, err = engine.Apply(GateT, 0)
				So(err, ShouldBeNil)
				start := engine.State()

				_, err = engine.Apply(gate, 0)
				So(err, ShouldBeNil)
				end, err := engine.Apply(gate, 0)
				So(err, ShouldBeNil)

				So(end.EquivalentTo(start, testTolerance), ShouldBeTrue)
			}
		})

		Convey("When applying S then S†", func() {
			_, _ = engine.Apply(GateRy, math.Pi/3)
			start := engine.State()

			_, err := engine.Apply(GateS, 0)
			So(err, ShouldBeNil)
			end, err := engine.Apply(GateSdg, 0)
			So(err, ShouldBeNil)

			So(end.EquivalentTo(start, testTolerance), ShouldBeTrue)
		})

		Convey("When applying T then T†", func() {
			_, _ = engine.Apply(GateH, 0)
			start := engine.State()

			_, _ = engine.Apply(GateT, 0)
			end, _ := engine.Apply(GateTdg, 0)

			So(end.EquivalentTo(start, testTolerance), ShouldBeTrue)
		})

		Convey("When applying Rz(θ) then Rz(-θ)", func() {
			for theta := -2 * math.Pi; theta <= 2*math.Pi; theta += math.Pi / 7 {
				engine.Reset()
				_, _ = engine.Apply(GateH, 0)
				start := engine.State()

				_, err := engine.Apply(GateRz, theta)
				So(err, ShouldBeNil)
				end, err := engine.Apply(GateRz, -theta)
				So(err, ShouldBeNil)

				So(end.EquivalentTo(start, testTolerance), ShouldBeTrue)
			}
		})

		Convey("When applying H to |0⟩", func() {
			state, err := engine.Apply(GateH, 0)
			So(err, ShouldBeNil)
			So(real(state.Alpha), ShouldAlmostEqual, 1/math.Sqrt2, testTolerance)
			So(real(state.Beta), ShouldAlmostEqual, 1/math.Sqrt2, testTolerance)
		})

		Convey("When applying X to |0⟩", func() {
			state, err := engine.Apply(GateX, 0)
			So(err, ShouldBeNil)
			So(state.Bloch().ApproxEqual(BlochPoint{Z: -1}, testTolerance), ShouldBeTrue)
		})

		Convey("When applying an unknown gate", func() {
			_, _ = engine.Apply(GateH, 0)
			before := engine.State()

			_, err := engine.Apply(Gate(99), 0)
			So(errors.Is(err, ErrInvalidGate), ShouldBeTrue)
			So(engine.State(), ShouldResemble, before)
		})

		Convey("When a rotation angle is out of range", func() {
			for _, theta := range []float64{2*math.Pi + 0.001, -7, math.NaN(), math.Inf(1)} {
				_, err := engine.Apply(GateRx, theta)
				So(errors.Is(err, ErrInvalidAngle), ShouldBeTrue)
			}
			So(engine.State(), ShouldResemble, Zero())
		})

		Convey("When the angle is exactly ±2π", func() {
			_, err := engine.Apply(GateRy, 2*math.Pi)
			So(err, ShouldBeNil)
			_, err = engine.Apply(GateRy, -2*math.Pi)
			So(err, ShouldBeNil)
		})

		Convey("When resetting", func() {
			_, _ = engine.Apply(GateH, 0)
			engine.Reset()
			So(engine.State(), ShouldResemble, Zero())
		})
	})
}

func TestEngineNormInvariant(t *testing.T) {
	Convey("Given every two-gate sequence from |0⟩", t, func() {
		angles := []float64{-2 * math.Pi, -math.Pi / 4, math.Pi / 2, math.Pi, 2 * math.Pi}

		for _, first := range Gates() {
			for _, second := range Gates() {
				for _, theta := range angles {
					engine := NewEngine()
					_, err := engine.Apply(first, theta)
					So(err, ShouldBeNil)
					state, err := engine.Apply(second, -theta)
					So(err, ShouldBeNil)

					So(state.Norm(), ShouldAlmostEqual, 1, testTolerance)
				}
			}
		}
	})

	Convey("Given a long alternating sequence", t, func() {
		engine := NewEngine()
		for i := 0; i < 1000; i++ {
			_, _ = engine.Apply(GateH, 0)
			_, _ = engine.Apply(GateT, 0)
			_, _ = engine.Apply(GateRx, 0.3)
		}
		So(engine.State().Norm(), ShouldAlmostEqual, 1, testTolerance)
	})
}

func TestEngineRejectsNonUnitaryMatrix(t *testing.T) {
	Convey("Given a catalog entry that does not preserve the norm", t, func() {
		original := catalog[GateX]
		catalog[GateX] = gateDef{label: "x", fixed: func() Matrix {
			return Matrix{
				{3, 0},
				{0, 0.5},
			}
		}}

		Reset(func() {
			catalog[GateX] = original
		})

		engine := NewEngine()

		Convey("Applying it should panic and leave the state alone", func() {
			So(func() { _, _ = engine.Apply(GateX, 0) }, ShouldPanic)
			So(engine.State(), ShouldResemble, Zero())
		})

		Convey("Unitary gates should still apply", func() {
			So(func() { _, _ = engine.Apply(GateH, 0) }, ShouldNotPanic)
		})
	})
}
