package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		provided *testing.T,
		mode Mode,
	) {
		if provided != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}
