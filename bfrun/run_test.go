package bfrun

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bf/bfopt"
	"github.com/reusee/bf/bfparse"
	"github.com/reusee/bf/bfvm"
)

func TestRun(t *testing.T) {
	state := bfvm.NewState(0)
	out := new(bytes.Buffer)
	err := Run(
		strings.NewReader("++++++++[>+++++++++<-]>."),
		strings.NewReader(""),
		out,
		state,
		bfopt.Default(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "H" {
		t.Fatalf("got %q", out.String())
	}
	if state.Cells[1] != 'H' || state.Pos != 1 {
		t.Fatal("bad state")
	}
}

func TestRunMulLoop(t *testing.T) {
	state := bfvm.NewState(0)
	state.Cells[0] = 5
	err := Run(
		strings.NewReader("[>>+++<<-]"),
		strings.NewReader(""),
		new(bytes.Buffer),
		state,
		bfopt.Default(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if state.Cells[0] != 0 || state.Cells[2] != 15 {
		t.Fatalf("got %v", state.Cells[:3])
	}
	if state.Pos != 0 {
		t.Fatalf("got %d", state.Pos)
	}
}

func TestRunScan(t *testing.T) {
	state := bfvm.NewState(0)
	state.Cells[0] = 1
	err := Run(
		strings.NewReader("[>>]"),
		strings.NewReader(""),
		new(bytes.Buffer),
		state,
		bfopt.Default(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if state.Pos != 2 {
		t.Fatalf("got %d", state.Pos)
	}
}

func TestRunPointerWrap(t *testing.T) {
	state := bfvm.NewState(0)
	state.Pos = bfvm.DefaultTapeSize - 1
	err := Run(
		strings.NewReader(">>>"),
		strings.NewReader(""),
		new(bytes.Buffer),
		state,
		bfopt.Default(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if state.Pos != 2 {
		t.Fatalf("got %d", state.Pos)
	}
}

func TestRunEmpty(t *testing.T) {
	state := bfvm.NewState(0)
	out := new(bytes.Buffer)
	if err := Run(strings.NewReader(""), strings.NewReader(""), out, state, bfopt.Default()); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 || state.Pos != 0 {
		t.Fatal("bad state")
	}
}

func TestRunParseError(t *testing.T) {
	err := Run(
		strings.NewReader("[[]"),
		strings.NewReader(""),
		new(bytes.Buffer),
		bfvm.NewState(0),
		bfopt.Default(),
	)
	var stageErr *Error
	if !errors.As(err, &stageErr) {
		t.Fatalf("got %v", err)
	}
	if stageErr.Stage != StageParse {
		t.Fatalf("got %q", stageErr.Stage)
	}
	if !errors.Is(err, bfparse.ErrMissingDelimiter) {
		t.Fatalf("got %v", err)
	}
}

func TestRunReadError(t *testing.T) {
	out := new(bytes.Buffer)
	err := Run(
		strings.NewReader(",[.,]"),
		strings.NewReader("hi"),
		out,
		bfvm.NewState(0),
		bfopt.Default(),
	)
	var stageErr *Error
	if !errors.As(err, &stageErr) {
		t.Fatalf("got %v", err)
	}
	if stageErr.Stage != StageRun {
		t.Fatalf("got %q", stageErr.Stage)
	}
	if !errors.Is(err, bfvm.ErrRead) {
		t.Fatalf("got %v", err)
	}
	// output before the failed read still went out
	if out.String() != "hi" {
		t.Fatalf("got %q", out.String())
	}
}

func TestStatePersists(t *testing.T) {
	state := bfvm.NewState(0)
	for range 3 {
		if err := Run(strings.NewReader("+"), strings.NewReader(""), new(bytes.Buffer), state, bfopt.Default()); err != nil {
			t.Fatal(err)
		}
	}
	if state.Cells[0] != 3 {
		t.Fatalf("got %d", state.Cells[0])
	}
}
