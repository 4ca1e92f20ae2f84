package bfrun

import (
	"io"

	"github.com/reusee/bf/bfopt"
	"github.com/reusee/bf/bfparse"
	"github.com/reusee/bf/bfvm"
)

// Run parses source, rewrites it with the given options, and executes
// it against state. in and out serve the program's read and write
// instructions.
func Run(source io.Reader, in io.Reader, out io.Writer, state *bfvm.State, options bfopt.Options) error {
	code, err := bfparse.Parse(source)
	if err != nil {
		return &Error{Stage: StageParse, Err: err}
	}
	code = bfopt.Optimize(code, options)
	if err := bfvm.Run(code, in, out, state); err != nil {
		return &Error{Stage: StageRun, Err: err}
	}
	return nil
}
