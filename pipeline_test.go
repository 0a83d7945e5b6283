package polycurve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

const squareData = "M 100,100 C 366.66666666666663,100 633.3333333333333,100 900,100 " +
	"C 900,366.66666666666663 900,633.3333333333333 900,900 " +
	"C 633.3333333333334,900 366.6666666666667,900 100,900 " +
	"C 100,633.3333333333334 100,366.6666666666667 100,100 Z"

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Precision = 512
	cfg.Steps = 8
	return cfg
}

func TestRun(t *testing.T) {
	res, err := Run(squareData, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Path) != 4 {
		t.Errorf("got %d segments, want 4", len(res.Path))
	}
	if len(res.Samples) != 8 {
		t.Errorf("got %d samples, want 8", len(res.Samples))
	}
	want := []Point{
		{100, 100}, {500, 100},
		{900, 100}, {900, 500},
		{900, 900}, {500, 900},
		{100, 900}, {100, 500},
	}
	diff(t, want, res.Points, cmpopts.EquateApprox(0, 1e-6))
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", res.Warnings)
	}
}

func TestRunWarnings(t *testing.T) {
	res, err := Run("M 100,100 H C 200,100 300,200 300,300 C 200,300 100,200 100,100", testConfig())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Warning{{Pos: 2, Token: "H"}}, res.Warnings)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		d     string
		mod   func(*Config)
		stage Stage
		check func(error) bool
	}{
		{
			d:     "C 1,1 2,2 3,3",
			stage: StageParse,
			check: func(err error) bool { var e *ParseError; return errors.As(err, &e) },
		},
		{
			d:     "M 1,1 Z",
			stage: StageParse,
			check: func(err error) bool { var e *DegenerateInputError; return errors.As(err, &e) },
		},
		{
			d:     squareData,
			mod:   func(c *Config) { c.Unknowns = 1000 },
			stage: StageFit,
			check: func(err error) bool { return errors.Is(err, ErrInvalidConfig) },
		},
		{
			d:     squareData,
			mod:   func(c *Config) { c.Method = SolveQR64.String() },
			stage: StageFit,
			check: func(err error) bool { var e *SingularSystemError; return errors.As(err, &e) },
		},
	}
	for _, tt := range tests {
		cfg := testConfig()
		if tt.mod != nil {
			tt.mod(&cfg)
		}
		res, err := Run(tt.d, cfg)
		if res != nil {
			t.Errorf("%q: got partial result", tt.d)
		}
		var serr *StageError
		if !errors.As(err, &serr) {
			t.Errorf("%q: got error %v, want *StageError", tt.d, err)
			continue
		}
		diff(t, tt.stage, serr.Stage)
		if !tt.check(err) {
			t.Errorf("%q: unexpected error %v", tt.d, err)
		}
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Replication = 4
	_, err := Run(squareData, cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got error %v, want %v", err, ErrInvalidConfig)
	}
	var serr *StageError
	if errors.As(err, &serr) {
		t.Errorf("configuration error reported as stage %v", serr.Stage)
	}
}

func TestRunSmoothed(t *testing.T) {
	pts := []Point{{200, 200}, {800, 250}, {700, 800}, {250, 700}, {200, 200}}
	path, err := AutoSmooth(pts, DefaultAlpha)
	if err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Steps = len(path) * cfg.Divisions
	res, err := Run(FormatPath(path), cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Every other evaluated point is a node of the smoothed outline.
	for i, pt := range pts[:len(pts)-1] {
		got := res.Points[i*cfg.Divisions]
		if d := got.Distance(pt); d > 1e-6 {
			t.Errorf("node %d: got %s, want %s", i, got, pt)
		}
	}
}
