package blochviz

import (
	"fmt"
	"iter"
)

/*
Trajectory is the materialized frame sequence for one gate application.
It is produced once per gate and handed to the renderer; the engine does
not keep it.
*/
type Trajectory struct {
	Gate   Gate
	Theta  float64
	points []BlochPoint
}

// Len returns the number of frames.
func (t Trajectory) Len() int {
	return len(t.points)
}

// Points returns a copy of the frames.
func (t Trajectory) Points() []BlochPoint {
	out := make([]BlochPoint, len(t.points))
	copy(out, t.points)
	return out
}

// All yields (frame index, point). Every call starts from the first frame.
func (t Trajectory) All() iter.Seq2[int, BlochPoint] {
	return func(yield func(int, BlochPoint) bool) {
		for i, p := range t.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// First and Last return the endpoints; both are the zero point for an empty trajectory.
func (t Trajectory) First() BlochPoint {
	if len(t.points) == 0 {
		return BlochPoint{}
	}
	return t.points[0]
}

func (t Trajectory) Last() BlochPoint {
	if len(t.points) == 0 {
		return BlochPoint{}
	}
	return t.points[len(t.points)-1]
}

/*
Interpolate produces frames evenly spaced points on the shortest arc between
the Bloch images of before and after. The first point is the image of before
and the last is the image of after. A single frame yields only the end point.
*/
func Interpolate(before, after QuantumState, frames int) (Trajectory, error) {
	return interpolate(before, after, frames, NewConfig().Tolerance)
}

func interpolate(before, after QuantumState, frames int, tolerance float64) (Trajectory, error) {
	if frames < 1 {
		return Trajectory{}, fmt.Errorf("%w: got %d", ErrInvalidFrameCount, frames)
	}

	from := before.Bloch()
	to := after.Bloch()

	if isDegenerate(from, to, tolerance) {
		return Trajectory{}, fmt.Errorf("%w: %v -> %v has no unique arc", ErrVisualizationInfeasible, from, to)
	}

	points := make([]BlochPoint, frames)
	if frames == 1 {
		points[0] = to
		return Trajectory{points: points}, nil
	}

	last := float64(frames - 1)
	for i := range points {
		points[i] = from.Slerp(to, float64(i)/last)
	}

	// Endpoints are the exact images, not slerp results.
	points[0] = from
	points[frames-1] = to

	return Trajectory{points: points}, nil
}
