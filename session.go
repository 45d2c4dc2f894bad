// session.go
package blochviz

import (
	"errors"
	"fmt"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Renderer is the drawing side of the application. It receives one Trajectory
per applied gate, the history text whenever it changes, and a failure signal
when a transition cannot be animated.
*/
type Renderer interface {
	Render(trajectory Trajectory)
	VisualizationFailed(err error)
	History(text string)
}

/*
Session ties the engine, tracker and trajectory generator together behind
the three mutating entry points the interaction surface uses: ApplyGate,
ApplyRotation and ClearSession. Everything runs synchronously on the
caller's goroutine.
*/
type Session struct {
	config     *Config
	engine     *Engine
	tracker    *Tracker
	renderer   Renderer
	metrics    *Metrics
	terminated bool
}

// nopRenderer stands in when a session is driven without a display.
type nopRenderer struct{}

func (nopRenderer) Render(Trajectory)         {}
func (nopRenderer) VisualizationFailed(error) {}
func (nopRenderer) History(string)            {}

/*
NewSession starts a session at |0⟩ with an empty history. A nil renderer
is replaced by one that discards everything.
*/
func NewSession(renderer Renderer, opts ...Option) *Session {
	if renderer == nil {
		renderer = nopRenderer{}
	}

	cfg := applyOptions(opts)
	if cfg.FramesPerGate < 1 {
		errnie.Warn("framesPerGate %v is not positive, using %v", cfg.FramesPerGate, NewConfig().FramesPerGate)
		cfg.FramesPerGate = NewConfig().FramesPerGate
	}

	session := &Session{
		config:   cfg,
		engine:   NewEngine(opts...),
		tracker:  NewTracker(opts...),
		renderer: renderer,
		metrics:  newMetrics(),
	}
	session.tracker.OnRecord = renderer.History

	errnie.Info(
		"NewSession - framesPerGate %v, maxOperations %v",
		cfg.FramesPerGate,
		cfg.MaxOperations,
	)

	return session
}

// ApplyGate applies one of the fixed gates, identified by its label.
func (s *Session) ApplyGate(id string) error {
	gate, err := s.accept(id)
	if err != nil {
		return err
	}

	if gate.Parameterized() {
		s.metrics.recordRejected()
		return fmt.Errorf("%w: %s needs an angle", ErrInvalidAngle, gate)
	}

	return s.step(gate, 0)
}

/*
ApplyRotation applies Rx, Ry or Rz by one of the quantized multiples of π.
The angle is resolved before anything is mutated, so an unsupported
fraction leaves state and history untouched.
*/
func (s *Session) ApplyRotation(id string, fraction float64) error {
	gate, err := s.accept(id)
	if err != nil {
		return err
	}

	if !gate.Parameterized() {
		s.metrics.recordRejected()
		return fmt.Errorf("%w: %s is not a rotation", ErrInvalidGate, gate)
	}

	theta, err := Resolve(fraction)
	if err != nil {
		s.metrics.recordRejected()
		errnie.Warn("rejected angle fraction %v for %s", fraction, gate)
		return err
	}

	return s.step(gate, theta)
}

// ClearSession resets the state to |0⟩, empties the history and re-enables input.
func (s *Session) ClearSession() {
	s.engine.Reset()
	s.tracker.Clear()
	s.terminated = false
	s.metrics.recordClear()
	s.renderer.History(s.tracker.Text())
	errnie.Info("session cleared")
}

// AtCapacity tells the interaction surface to disable gate input.
func (s *Session) AtCapacity() bool {
	return s.tracker.AtCapacity()
}

// Terminated is true after a visualization failure, until ClearSession.
func (s *Session) Terminated() bool {
	return s.terminated
}

func (s *Session) HistoryText() string {
	return s.tracker.Text()
}

func (s *Session) History() []OperationRecord {
	return s.tracker.History()
}

func (s *Session) State() QuantumState {
	return s.engine.State()
}

func (s *Session) Metrics() *Metrics {
	return s.metrics
}

func (s *Session) accept(id string) (Gate, error) {
	if s.terminated {
		s.metrics.recordRejected()
		return 0, ErrSessionTerminated
	}

	if s.tracker.AtCapacity() {
		s.metrics.recordRejected()
		return 0, fmt.Errorf("%w: %d operations", ErrAtCapacity, s.tracker.CountOperations())
	}

	gate, err := ParseGate(id)
	if err != nil {
		s.metrics.recordRejected()
		return 0, err
	}

	return gate, nil
}

func (s *Session) step(gate Gate, theta float64) error {
	start := time.Now()
	before := s.engine.State()

	after, err := s.engine.Apply(gate, theta)
	if err != nil {
		s.metrics.recordRejected()
		return err
	}

	if _, err := s.tracker.Record(gate.Label()); err != nil {
		s.metrics.recordRejected()
		return err
	}

	trajectory, err := interpolate(before, after, s.config.FramesPerGate, s.config.Tolerance)
	if err != nil {
		if errors.Is(err, ErrVisualizationInfeasible) {
			s.terminated = true
			s.metrics.recordInfeasible()
			errnie.Warn("visualization terminated after %s: %v", gate, err)
			s.renderer.VisualizationFailed(err)
		}
		return err
	}

	trajectory.Gate = gate
	trajectory.Theta = theta

	s.renderer.Render(trajectory)
	s.metrics.recordStep(start, gate, trajectory.Len())

	return nil
}
