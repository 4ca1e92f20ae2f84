package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts a Go value for use as an interpreter
// global. Functions become callable, structs and maps become dicts,
// byte slices become bytes. Unsupported kinds panic.
func toStarlarkValue(v any) starlark.Value {
	if v == nil {
		return starlark.None
	}
	switch v := v.(type) {
	case starlark.Value:
		return v
	case []byte:
		return starlark.Bytes(v)
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(value reflect.Value) starlark.Value {
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice &&
			value.Type().Elem().Kind() == reflect.Uint8 {
			return starlark.Bytes(value.Bytes())
		}
		n := value.Len()
		elems := make([]starlark.Value, n)
		for i := range n {
			elems[i] = fromReflect(value.Index(i))
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				fromReflect(iter.Key()),
				fromReflect(iter.Value()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				fromReflect(value.Field(i)),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return fromReflect(elem)

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %v", value.Type()))
}
