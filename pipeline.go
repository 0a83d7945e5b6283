package polycurve

import "strings"

// Result holds the output of every stage of [Run].
type Result struct {
	Path     Path
	Samples  SampleSet
	Curve    FittedCurve
	Points   []Point
	Warnings []Warning
}

// Run parses path data, samples it, fits a polynomial pair and evaluates
// it. The stages run strictly one after another. A failing stage is
// reported as a [*StageError] and no partial result is returned.
func Run(d string, cfg Config) (*Result, error) {
	return RunTokens(strings.Fields(d), cfg)
}

// RunTokens is like [Run] but takes the path data already split into
// tokens.
func RunTokens(tokens []string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	parser := cfg.Parser()
	parser.Warn = func(w Warning) {
		res.Warnings = append(res.Warnings, w)
	}
	path, err := parser.Parse(tokens)
	if err != nil {
		return nil, &StageError{Stage: StageParse, Err: err}
	}
	if len(path) == 0 {
		return nil, &StageError{Stage: StageParse, Err: &DegenerateInputError{What: "curve segments", Have: 0, Need: 1}}
	}

	samples, err := cfg.Sampler().Sample(path)
	if err != nil {
		return nil, &StageError{Stage: StageSample, Err: err}
	}

	curve, err := cfg.Fitter().Fit(samples)
	if err != nil {
		return nil, &StageError{Stage: StageFit, Err: err}
	}

	res.Path = path
	res.Samples = samples
	res.Curve = curve
	res.Points = cfg.Evaluator().Evaluate(curve)
	return res, nil
}
