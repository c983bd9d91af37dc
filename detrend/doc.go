// Package detrend provides the detrending procedures of the bounded unit
// root tests.
//
// Three variants are supported, matching the detrending axis of the test
// configuration:
//
//   - OLS: ordinary least squares demeaning.
//   - GLSERS: Elliott-Rothenberg-Stock local-to-unity GLS demeaning with
//     cbar = -7.
//   - GLSBounds: GLS demeaning with the quasi-differencing constant adapted
//     to the bounds through the scaled bound width kappa.
//
// GLSBounds additionally reports the c-parameters (the scaled distances
// from the start of the sample to each bound) and kappa, which index the
// limiting distribution of the bounded test statistics.
package detrend
