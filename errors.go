package blochviz

import "errors"

var (
	// ErrInvalidGate means the caller passed a gate outside the catalog.
	ErrInvalidGate = errors.New("invalid gate")
	// ErrInvalidAngle means a rotation angle fell outside [-2π, 2π].
	ErrInvalidAngle = errors.New("invalid rotation angle")
	// ErrUnsupportedFraction means the angle choice is not one of the quantized multiples of π.
	ErrUnsupportedFraction = errors.New("unsupported angle fraction")
	// ErrVisualizationInfeasible means the transition has no well-defined arc to animate.
	ErrVisualizationInfeasible = errors.New("visualization infeasible")
	// ErrInvalidFrameCount means a trajectory was requested with fewer than one frame.
	ErrInvalidFrameCount = errors.New("frame count must be positive")
	// ErrAtCapacity means the operation cap is reached and no more gates are accepted.
	ErrAtCapacity = errors.New("operation limit reached")
	// ErrSessionTerminated means a visualization failure ended the session; clear it to continue.
	ErrSessionTerminated = errors.New("visualization session terminated")
)
