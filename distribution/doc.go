// Package distribution provides the binomial and Poisson probability mass
// functions.
//
// Both families implement Distribution:
//
//	var d distribution.Distribution = distribution.Binomial{N: 10, P: 0.5}
//	p, err := d.PMF(5) // 0.24609375
//	d.Mean()           // 5
//	d.Variance()       // 2.5
//
// Parameters are validated on every PMF call; invalid parameters report
// numerr.DomainError and a Poisson x above 170 reports numerr.Overflow.
package distribution
