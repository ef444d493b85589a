// Package descriptive implements summary statistics and counting primitives.
//
// Every function validates its input and returns a *numerr.Error on failure;
// nothing returns NaN or a partially computed value.
//
// # Moments
//
//	mean, _ := descriptive.Mean(xs)
//	v, _ := descriptive.Variance(xs)        // population, divides by n
//	sv, err := descriptive.SampleVariance(xs) // divides by n-1, needs n >= 2
//
// # Mode
//
// Mode returns a tagged result instead of overloading its return type:
//
//	m, _ := descriptive.Mode(xs)
//	switch m.Kind {
//	case descriptive.Unique:     // m.Values[0]
//	case descriptive.Multimodal: // every tied value, ascending
//	case descriptive.NoMode:     // all values unique
//	}
//
// # Counting
//
//	f, err := descriptive.Factorial(171) // numerr.Overflow
//	c := descriptive.Combinations(10, 5) // 252; invalid arguments give 0
//	g, err := descriptive.GCD(48, 18)    // 6
//	a, b, _ := descriptive.SimplifyRatio(48, 18) // 8:3
package descriptive
