package configs

import (
	"errors"

	"github.com/reusee/bf/bfopt"
	"github.com/reusee/bf/cmds"
)

var (
	noMergeFlag   = cmds.Switch("-no-merge")
	noAssignFlag  = cmds.Switch("-no-assign")
	noOffsetsFlag = cmds.Switch("-no-offsets")
	noLoopsFlag   = cmds.Switch("-no-loops")
	noScansFlag   = cmds.Switch("-no-scans")
)

// Options resolves the rewrite pass switches. All passes default to
// enabled, config files turn individual passes off or on, and the
// -no-* flags override the config.
func (Module) Options(
	loader Loader,
) bfopt.Options {
	options := bfopt.Default()

	assign := func(target *bool, path string) {
		var value bool
		err := loader.AssignFirst(path, &value)
		if err != nil {
			if errors.Is(err, ErrValueNotFound) {
				return
			}
			panic(err)
		}
		*target = value
	}
	assign(&options.MergeOperators, "merge_operators")
	assign(&options.CollapseAssignments, "collapse_assignments")
	assign(&options.CollapseOffsets, "collapse_offsets")
	assign(&options.CollapseLoops, "collapse_loops")
	assign(&options.CollapseScanLoops, "collapse_scan_loops")

	if *noMergeFlag {
		options.MergeOperators = false
	}
	if *noAssignFlag {
		options.CollapseAssignments = false
	}
	if *noOffsetsFlag {
		options.CollapseOffsets = false
	}
	if *noLoopsFlag {
		options.CollapseLoops = false
	}
	if *noScansFlag {
		options.CollapseScanLoops = false
	}

	return options
}
