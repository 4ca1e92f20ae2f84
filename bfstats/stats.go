package bfstats

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/bf/bfvm"
)

// Results tallies the nodes of an instruction tree. A loop counts as
// one node and its body nodes count on top of that.
type Results struct {
	Total int
	Count map[bfvm.Op]int
}

func Analyze(code []bfvm.Node) Results {
	res := Results{
		Count: make(map[bfvm.Op]int),
	}
	res.walk(code)
	return res
}

func (r *Results) walk(code []bfvm.Node) {
	for _, n := range code {
		r.Total++
		r.Count[n.Op]++
		if n.Op == bfvm.OpLoop {
			r.walk(n.Body)
		}
	}
}

func (r Results) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d nodes", r.Total)
	for _, op := range slices.Sorted(maps.Keys(r.Count)) {
		fmt.Fprintf(&b, ", %s %d", op, r.Count[op])
	}
	return b.String()
}
