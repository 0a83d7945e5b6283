package polycurve

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the pipeline. Keys left out of a loaded file
// keep their defaults; keys set explicitly, even to zero, replace them.
type Config struct {
	// Divisions is the number of samples per segment.
	Divisions int `yaml:"divisions"`
	// Replication is the number of periods used to suppress seam distortion.
	Replication int `yaml:"replication"`
	// Precision is the working precision of all arithmetic, in bits.
	Precision uint `yaml:"precision"`
	// Scale divides path coordinates before fitting and multiplies fitted
	// values afterwards.
	Scale float64 `yaml:"scale"`
	// Steps is the number of evaluated points.
	Steps int `yaml:"steps"`
	// CanvasSize is the side of the preview image in pixels.
	CanvasSize int `yaml:"canvas_size"`
	// ClampMin and ClampMax bound both coordinates of evaluated points.
	ClampMin float64 `yaml:"clamp_min"`
	ClampMax float64 `yaml:"clamp_max"`
	// Close is the close command policy, "ignore" or "line".
	Close string `yaml:"close"`
	// Unknowns is the number of coefficients per axis; 0 means a square
	// system.
	Unknowns int `yaml:"unknowns"`
	// Method is the solve method: "auto", "normal", "direct" or "qr64".
	Method string `yaml:"method"`
	// TrimBits is the trimming threshold for trailing coefficients; 0 means
	// a quarter of Precision.
	TrimBits uint `yaml:"trim_bits"`
	// KeepDegree disables trimming of trailing coefficients.
	KeepDegree bool `yaml:"keep_degree"`
}

// DefaultConfig returns the configuration the pipeline uses when nothing is
// configured.
func DefaultConfig() Config {
	return Config{
		Divisions:   DefaultDivisions,
		Replication: DefaultReplication,
		Precision:   DefaultPrecision,
		Scale:       DefaultScale,
		Steps:       DefaultSteps,
		CanvasSize:  DefaultCanvasSize,
		ClampMin:    0,
		ClampMax:    DefaultCanvasSize,
		Close:       CloseIgnore.String(),
		Method:      SolveAuto.String(),
	}
}

// LoadConfig reads a YAML configuration file on top of [DefaultConfig]. A
// missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting. All returned errors wrap
// [ErrInvalidConfig].
func (cfg Config) Validate() error {
	switch {
	case cfg.Divisions < 1:
		return fmt.Errorf("%w: divisions must be positive, got %d", ErrInvalidConfig, cfg.Divisions)
	case cfg.Replication < 1 || cfg.Replication%2 == 0:
		return fmt.Errorf("%w: replication must be a positive odd number, got %d", ErrInvalidConfig, cfg.Replication)
	case cfg.Precision < 53:
		return fmt.Errorf("%w: precision must be at least 53 bits, got %d", ErrInvalidConfig, cfg.Precision)
	case cfg.Scale == 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0):
		return fmt.Errorf("%w: scale must be finite and non-zero, got %g", ErrInvalidConfig, cfg.Scale)
	case cfg.Steps < 1:
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, cfg.Steps)
	case cfg.CanvasSize < 1:
		return fmt.Errorf("%w: canvas_size must be positive, got %d", ErrInvalidConfig, cfg.CanvasSize)
	case !(cfg.ClampMin < cfg.ClampMax):
		return fmt.Errorf("%w: clamp_min %g must be below clamp_max %g", ErrInvalidConfig, cfg.ClampMin, cfg.ClampMax)
	case cfg.Unknowns < 0:
		return fmt.Errorf("%w: unknowns must not be negative, got %d", ErrInvalidConfig, cfg.Unknowns)
	}
	if _, err := ParseClosePolicy(cfg.Close); err != nil {
		return err
	}
	if _, err := ParseSolveMethod(cfg.Method); err != nil {
		return err
	}
	return nil
}

// Parser returns the path parser described by cfg.
func (cfg Config) Parser() Parser {
	// Validate has rejected unknown names.
	policy, _ := ParseClosePolicy(cfg.Close)
	return Parser{Close: policy}
}

// Sampler returns the sampler described by cfg.
func (cfg Config) Sampler() Sampler {
	return Sampler{Divisions: cfg.Divisions, Scale: cfg.Scale, Prec: cfg.Precision}
}

// Fitter returns the fit solver described by cfg.
func (cfg Config) Fitter() Fitter {
	method, _ := ParseSolveMethod(cfg.Method)
	return Fitter{
		Replication: cfg.Replication,
		Unknowns:    cfg.Unknowns,
		Method:      method,
		Prec:        cfg.Precision,
		TrimBits:    cfg.TrimBits,
		KeepDegree:  cfg.KeepDegree,
	}
}

// ClampRect returns the output range as a rectangle.
func (cfg Config) ClampRect() Rect {
	return Rect{cfg.ClampMin, cfg.ClampMin, cfg.ClampMax, cfg.ClampMax}
}

// Evaluator returns the evaluator described by cfg.
func (cfg Config) Evaluator() Evaluator {
	return Evaluator{Steps: cfg.Steps, Scale: cfg.Scale, Clamp: cfg.ClampRect()}
}

// PreviewOptions returns the preview settings described by cfg.
func (cfg Config) PreviewOptions() PreviewOptions {
	return PreviewOptions{Size: cfg.CanvasSize, Space: cfg.ClampRect()}
}
