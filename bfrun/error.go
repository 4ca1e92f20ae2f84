package bfrun

// Stage names the pipeline stage an error came from.
type Stage string

const (
	StageParse Stage = "parse"
	StageRun   Stage = "run"
)

// Error wraps a failure with its pipeline stage, so callers can tell a
// malformed program from one that failed while running.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
