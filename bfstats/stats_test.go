package bfstats

import (
	"reflect"
	"testing"

	"github.com/reusee/bf/bfvm"
)

func TestAnalyzeEmpty(t *testing.T) {
	res := Analyze(nil)
	if res.Total != 0 {
		t.Fatalf("got %d", res.Total)
	}
	if len(res.Count) != 0 {
		t.Fatalf("got %v", res.Count)
	}
}

func TestAnalyze(t *testing.T) {
	res := Analyze([]bfvm.Node{
		bfvm.Shift(1),
		bfvm.Inc(1, 0, false),
		bfvm.Loop(
			bfvm.Dec(1, 0, false),
			bfvm.In(0, false),
		),
		bfvm.Out(0, false),
	})
	if res.Total != 6 {
		t.Fatalf("got %d", res.Total)
	}
	expected := map[bfvm.Op]int{
		bfvm.OpShift: 1,
		bfvm.OpInc:   1,
		bfvm.OpDec:   1,
		bfvm.OpIn:    1,
		bfvm.OpOut:   1,
		bfvm.OpLoop:  1,
	}
	if !reflect.DeepEqual(res.Count, expected) {
		t.Fatalf("got %v", res.Count)
	}
}

func TestAnalyzeNested(t *testing.T) {
	res := Analyze([]bfvm.Node{
		bfvm.Loop(bfvm.Loop(bfvm.Loop())),
	})
	if res.Total != 3 {
		t.Fatalf("got %d", res.Total)
	}
	if res.Count[bfvm.OpLoop] != 3 {
		t.Fatalf("got %v", res.Count)
	}
}

func TestResultsString(t *testing.T) {
	res := Analyze([]bfvm.Node{
		bfvm.Shift(1),
		bfvm.Inc(1, 0, false),
		bfvm.Inc(1, 1, false),
	})
	if res.String() != "3 nodes, shift 1, inc 2" {
		t.Fatalf("got %q", res.String())
	}
}
