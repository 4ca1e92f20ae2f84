package main

import (
	"context"
	"os"
	"strings"

	"github.com/reusee/bf/bfopt"
	"github.com/reusee/bf/bfrun"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Run    bfrun.Module
	Debugs debugs.Module
}

const Theory = `
Staged Interpretation:
A program goes through three stages: parsing into an instruction tree,
a fixed pipeline of tree rewrites, and tree-walking execution. The
rewrites only ever produce instructions the machine natively executes,
so execution never needs to know whether its input was rewritten.

The tape is circular and the machine state outlives any single
program. The interactive prompt leans on this: each line is a complete
program run against the same tape, so a session builds up state the
way a script does, and snapshots of the tape can move between
sessions.
`

func main() {
	ctx := context.Background()

	args := os.Args[1:]
	var path string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		path = args[0]
		args = args[1:]
	}
	if err := cmds.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		runner bfrun.Runner,
		tapeSize configs.TapeSize,
		options bfopt.Options,
		tap debugs.Tap,
	) {
		state := bfvm.NewState(int(tapeSize))

		if path == "" {
			runREPL(ctx, &session{
				runner:  runner,
				tap:     tap,
				options: options,
				state:   state,
			})
			return
		}

		f, err := os.Open(path)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()

		if err := runner(ctx, f, os.Stdin, os.Stdout, state); err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
	})

}
