// Package inference implements classical hypothesis tests.
//
// # Tests
//
//   - WelchTTest: two-sample t-test with unequal variances.
//   - ChiSquareGoodnessOfFit: observed versus expected counts.
//   - OneWayANOVA: equality of k group means.
//   - TukeyHSD: pairwise comparisons following a significant ANOVA.
//
// p-values come from gonum's distuv package (StudentsT, ChiSquared, F).
//
// # Studentized Range
//
// TukeyHSD needs the distribution of the studentized range, which gonum does
// not provide. StudentizedRangeCDF evaluates it by Gauss-Legendre quadrature
// over the range of k standard normals and the chi density of the scale
// estimate:
//
//	p := 1 - inference.StudentizedRangeCDF(q, k, dfWithin)
//
// # Example
//
//	table, err := inference.OneWayANOVA(groups)
//	if err != nil {
//		return err
//	}
//	comps, _ := inference.TukeyHSD(groups, table, 0.05)
//	for _, c := range comps {
//		fmt.Printf("%d vs %d: q=%.3f p=%.4f\n", c.I, c.J, c.Q, c.PValue)
//	}
package inference
