package configs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/vars"
)

// TapeSize is the number of tape cells a new machine gets.
type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func (Module) TapeSize(
	loader Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		First[int](loader, "tape_size"),
		bfvm.DefaultTapeSize,
	))
}
