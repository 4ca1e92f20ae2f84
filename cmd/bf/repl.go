package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bfopt"
	"github.com/reusee/bf/bfparse"
	"github.com/reusee/bf/bfrun"
	"github.com/reusee/bf/bfstats"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
)

type session struct {
	runner  bfrun.Runner
	tap     debugs.Tap
	options bfopt.Options
	state   *bfvm.State
	last    string
}

func runREPL(ctx context.Context, s *session) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "bf# ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for {
		fmt.Println(s.state)
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := replCommand(ctx, s, line); quit {
				break
			}
			continue
		}
		s.last = line
		if err := s.runner(ctx, strings.NewReader(line), os.Stdin, os.Stdout, s.state); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func replCommand(ctx context.Context, s *session, line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {

	case ":q", ":quit":
		return true

	case ":save":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "usage: :save PATH")
			return false
		}
		f, err := os.Create(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return false
		}
		defer f.Close()
		if err := s.state.Snapshot(f); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

	case ":load":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "usage: :load PATH")
			return false
		}
		f, err := os.Open(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return false
		}
		defer f.Close()
		if err := s.state.Restore(f); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

	case ":tap":
		globals := map[string]any{
			"pos":  s.state.Pos,
			"tape": s.state.Cells,
			"peek": func(offset int) byte {
				return s.state.Cell(offset)
			},
			"poke": func(offset int, value int) {
				s.state.SetCell(offset, byte(value))
			},
		}
		if s.last != "" {
			globals["profile"] = profileOf(s.last, s.options)
		}
		s.tap(ctx, "repl", globals)

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", fields[0])
	}
	return false
}

// profileOf renders the instruction profile of source as it would
// execute, after rewriting.
func profileOf(source string, options bfopt.Options) string {
	code, err := bfparse.Parse(strings.NewReader(source))
	if err != nil {
		return err.Error()
	}
	return bfstats.Analyze(bfopt.Optimize(code, options)).String()
}
