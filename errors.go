package polycurve

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by all configuration validation errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// ParseError reports a path string that cannot be turned into segments.
type ParseError struct {
	// Pos is the index of the offending token.
	Pos int
	// Token is the offending token, or "" at the end of input.
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("path token %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("path token %d %q: %s", e.Pos, e.Token, e.Msg)
}

// DegenerateInputError reports input that is well-formed but too small to
// work with, such as a path without any curves.
type DegenerateInputError struct {
	What string
	Have int
	Need int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s: have %d, need at least %d", e.What, e.Have, e.Need)
}

// SingularSystemError reports a linear system that is singular at the working
// precision.
type SingularSystemError struct {
	// Column is the elimination step at which no usable pivot was found, or
	// -1 if the solver does not report one.
	Column int
	// Size is the order of the system.
	Size int
	// Prec is the working precision in bits.
	Prec uint
}

func (e *SingularSystemError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("singular %d×%d system at %d bits of precision", e.Size, e.Size, e.Prec)
	}
	return fmt.Sprintf("singular %d×%d system at %d bits of precision (no pivot in column %d)",
		e.Size, e.Size, e.Prec, e.Column)
}

// Stage names a step of [Run].
type Stage int

const (
	StageParse Stage = iota + 1
	StageSample
	StageFit
	StageEvaluate
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageSample:
		return "sample"
	case StageFit:
		return "fit"
	case StageEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// StageError wraps an error with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
