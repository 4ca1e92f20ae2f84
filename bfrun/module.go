package bfrun

import (
	"context"
	"io"
	"time"

	"github.com/reusee/bf/bfopt"
	"github.com/reusee/bf/bfparse"
	"github.com/reusee/bf/bfstats"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

var statsFlag = cmds.Switch("-stats")

// Runner executes one program source against a state. Each call gets
// its own log span, and with -stats set it logs the instruction
// profile before and after rewriting.
type Runner func(ctx context.Context, source io.Reader, in io.Reader, out io.Writer, state *bfvm.State) error

func (Module) Runner(
	logger logs.Logger,
	newSpan logs.NewSpan,
	options bfopt.Options,
) Runner {
	return func(ctx context.Context, source io.Reader, in io.Reader, out io.Writer, state *bfvm.State) error {
		ctx, _ = newSpan(ctx, "")

		code, err := bfparse.Parse(source)
		if err != nil {
			return logs.WrapSpan(ctx, &Error{Stage: StageParse, Err: err})
		}
		optimized := bfopt.Optimize(code, options)

		if *statsFlag {
			logger.InfoContext(ctx, "instruction profile",
				"parsed", bfstats.Analyze(code).String(),
				"optimized", bfstats.Analyze(optimized).String(),
			)
		}

		t0 := time.Now()
		if err := bfvm.Run(optimized, in, out, state); err != nil {
			return logs.WrapSpan(ctx, &Error{Stage: StageRun, Err: err})
		}
		logger.DebugContext(ctx, "program done",
			"instructions", len(optimized),
			"duration", time.Since(t0),
		)
		return nil
	}
}
