// Package regression fits least-squares lines and measures linear association.
//
// # Linear Regression
//
//	fit, err := regression.Linear(x, y)
//	if err != nil {
//		return err
//	}
//	yhat := fit.Predict(10)
//
// Linear needs at least two paired observations and a non-constant x.
//
// # Correlation
//
// Pearson returns r clamped to [-1, 1]. Significance converts r into a
// t statistic with n-2 degrees of freedom and a two-tailed p-value:
//
//	r, _ := regression.Pearson(a, b)
//	sig, _ := regression.Significance(r, len(a))
//
// Correlate builds the full r and p matrices for a set of columns.
package regression
