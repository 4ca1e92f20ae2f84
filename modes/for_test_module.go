package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

// ForTest binds the running test into the scope.
func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
