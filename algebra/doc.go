// Package algebra solves linear and quadratic equations and sums arithmetic
// and geometric progressions.
//
//	q, err := algebra.SolveQuadratic(1, -3, 2)
//	// q.Kind == algebra.TwoReal, q.RealRoots() == [2 1], q.Vertex == {1.5 -0.25}
//
// SolveQuadratic with a zero leading coefficient returns ErrNotQuadratic;
// use SolveLinear for that case.
package algebra
