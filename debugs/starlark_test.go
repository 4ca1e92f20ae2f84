package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type machineInfo struct {
		Pos    int
		Halted bool
		note   string
	}

	ptr := &machineInfo{Pos: 3}

	for _, tc := range []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "bf# ", starlark.String("bf# ")},
		{"int", 42, starlark.MakeInt(42)},
		{"byte", byte(255), starlark.MakeInt(255)},
		{"float", 3.14, starlark.Float(3.14)},
		{"tape", []byte{0, 7, 0}, starlark.Bytes("\x00\x07\x00")},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1),
			starlark.MakeInt(2),
		})},
		{"counts", map[string]int{"inc": 2}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("inc"), starlark.MakeInt(2))
			return d
		}()},
		{"struct", machineInfo{Pos: 3, Halted: true, note: "x"}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Pos"), starlark.MakeInt(3))
			d.SetKey(starlark.String("Halted"), starlark.True)
			return d
		}()},
		{"pointer", ptr, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Pos"), starlark.MakeInt(3))
			d.SetKey(starlark.String("Halted"), starlark.False)
			return d
		}()},
		{"nil pointer", (*machineInfo)(nil), starlark.None},
		{"prebuilt", starlark.MakeInt(1), starlark.MakeInt(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(got, tc.expected)
			if err != nil {
				t.Fatalf("compare: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestToStarlarkFunc(t *testing.T) {
	fn := toStarlarkValue(func(a, b int) int {
		return a + b
	})
	thread := new(starlark.Thread)
	ret, err := starlark.Call(thread, fn, starlark.Tuple{
		starlark.MakeInt(1),
		starlark.MakeInt(2),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := starlark.Equal(ret, starlark.MakeInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatalf("got %v", ret)
	}
}

func TestToStarlarkUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic")
		}
	}()
	toStarlarkValue(make(chan int))
}
