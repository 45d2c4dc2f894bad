package blochviz

/*
IsDegenerate reports whether the transition from before to after has no
uniquely defined great-circle arc: the Bloch images coincide (a full turn,
or a gate that only changes global phase) or sit at opposite poles.
*/
func IsDegenerate(before, after QuantumState) bool {
	return isDegenerate(before.Bloch(), after.Bloch(), NewConfig().Tolerance)
}

func isDegenerate(from, to BlochPoint, tolerance float64) bool {
	return from.ApproxEqual(to, tolerance) || from.ApproxEqual(to.Scale(-1), tolerance)
}
