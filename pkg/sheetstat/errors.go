package sheetstat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource indicates none of URL, ID or Path was given.
	ErrNoSource = errors.New("no data source given")

	// ErrSourceConflict indicates more than one of URL, ID or Path was given.
	ErrSourceConflict = errors.New("only one of url, id or path may be given")

	// ErrInvalidURL indicates a spreadsheet URL without an identifier.
	ErrInvalidURL = errors.New("invalid spreadsheet URL")

	// ErrInvalidWorksheet indicates a negative worksheet index.
	ErrInvalidWorksheet = errors.New("worksheet index must not be negative")
)

// Stage names a pipeline step.
type Stage string

const (
	// StageResolve turns the options into a Source.
	StageResolve Stage = "resolve"
	// StageCredentials obtains Google credentials and the Sheets client.
	StageCredentials Stage = "credentials"
	// StageLoad reads the source into a table.
	StageLoad Stage = "load"
	// StageReport prints the summary and emits the plots.
	StageReport Stage = "report"
)

// Process exit codes.
const (
	// ExitOK reports a completed run.
	ExitOK = 0
	// ExitFailure covers usage errors and report failures.
	ExitFailure = 1
	// ExitCredentials reports that no usable credentials were found.
	ExitCredentials = 2
	// ExitLoad covers unresolvable sources and load failures.
	ExitLoad = 3
)

// StageError tags a failure with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Stage.Action(), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// Action describes what the stage does, for error messages.
func (s Stage) Action() string {
	switch s {
	case StageResolve:
		return "resolve source"
	case StageCredentials:
		return "acquire credentials"
	case StageLoad:
		return "load data"
	case StageReport:
		return "report"
	default:
		return string(s)
	}
}

// ExitCode maps an error returned by Run to a process exit code.
// Resolution failures count as load failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var se *StageError
	if !errors.As(err, &se) {
		return ExitFailure
	}
	switch se.Stage {
	case StageCredentials:
		return ExitCredentials
	case StageResolve, StageLoad:
		return ExitLoad
	default:
		return ExitFailure
	}
}
