// Package polycurve turns closed outlines made of cubic Béziers into a pair
// of polynomials x(t), y(t) that trace the outline once as t runs over
// [0, 1).
//
// # Pipeline
//
// The conversion runs in four stages, which [Run] chains together:
//
//   - [Parser] reads SVG-style path data (M, m, C, c, z, Z with "x,y" pairs)
//     into a [Path] of [CubicBez] segments.
//   - [Sampler] expands every segment into its Bernstein polynomials (see
//     [CubicBez.Polynomials]) and evaluates them at evenly spaced parameters.
//   - [Fitter] fits one polynomial per axis through the samples by linear
//     least squares.
//   - [Evaluator] samples the fitted curve for plotting, and
//     [WriteCoefficients] stores its coefficients.
//
// # Periodic fitting
//
// A polynomial fitted through a single period of a closed curve has no
// reason to agree with itself at t = 0 and t = 1, which leaves a visible
// seam. [Fitter] therefore replicates the samples over K consecutive periods
// centered on [0, 1) and fits through all of them. The middle period inherits
// the periodicity of its neighbours, and the seam shrinks accordingly. See
// [FittedCurve.Seam].
//
// # Precision
//
// The Vandermonde systems involved are extremely ill-conditioned, so all
// arithmetic uses [math/big.Float] at a configurable precision, 2000 bits by
// default ([DefaultPrecision]). Values only become float64 at the very end,
// in [Evaluator.Evaluate]. [SolveQR64] is available for quick low-precision
// previews.
//
// # Logging
//
// The package logs through [log/slog] and is silent by default. Use
// [SetLogger] to receive debug records about the individual stages and
// warnings about skipped path commands.
package polycurve
