// Package property implements ordered combination of partial property bags.
//
// An Object is an arbitrarily nested key/value bag as produced by the OOXML
// converter: values are primitives, nested objects or slices. The package has
// no knowledge of OOXML keys; domain rules are injected through combine options.
package property

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Object is a partial set of properties.
type Object map[string]any

// AsObject returns v as an Object when it is one (plain map[string]any is
// accepted too).
func AsObject(v any) (Object, bool) {
	switch m := v.(type) {
	case Object:
		return m, m != nil
	case map[string]any:
		return Object(m), m != nil
	default:
		return nil, false
	}
}

// Normalize returns a copy of m with every nested plain map converted to an
// Object. Nil in gives nil out.
func Normalize(m map[string]any) Object {
	if m == nil {
		return nil
	}
	return Clone(Object(m))
}

// Clone returns a deep copy of o. Nested maps and slices are copied, nil
// values are dropped.
func Clone(o Object) Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for k, v := range o {
		if v == nil {
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if m, ok := AsObject(v); ok {
		return Clone(m)
	}
	switch s := v.(type) {
	case []any:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = cloneValue(item)
		}
		return out
	case []Object:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = Clone(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = Clone(Object(item))
		}
		return out
	}
	return cloneReflect(v)
}

// cloneReflect copies typed slices and maps ([]string, map[string]int, ...)
// keeping their type. Other values are returned as is.
func cloneReflect(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			setCloned(out.Index(i), rv.Index(i))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item := reflect.New(rv.Type().Elem()).Elem()
			setCloned(item, iter.Value())
			out.SetMapIndex(iter.Key(), item)
		}
		return out.Interface()
	}
	return v
}

// setCloned stores a deep copy of src into dst when the copy keeps the
// element type, a plain copy otherwise.
func setCloned(dst, src reflect.Value) {
	if src.Kind() == reflect.Interface && src.IsNil() {
		return
	}
	if src.CanInterface() {
		c := reflect.ValueOf(cloneValue(src.Interface()))
		if c.IsValid() && c.Type().AssignableTo(dst.Type()) {
			dst.Set(c)
			return
		}
	}
	dst.Set(src)
}

// Has reports whether key is present with a non-nil value.
func (o Object) Has(key string) bool {
	if o == nil {
		return false
	}
	v, ok := o[key]
	return ok && v != nil
}

// Obj returns the nested object stored under key, or nil.
func (o Object) Obj(key string) Object {
	if o == nil {
		return nil
	}
	m, _ := AsObject(o[key])
	return m
}

// Get walks nested objects along path.
func (o Object) Get(path ...string) (any, bool) {
	cur := o
	for i, key := range path {
		if cur == nil {
			return nil, false
		}
		v, ok := cur[key]
		if !ok || v == nil {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		cur, _ = AsObject(v)
	}
	return nil, false
}

// Int returns the value stored under path as an int.
func (o Object) Int(path ...string) (int, bool) {
	v, ok := o.Get(path...)
	if !ok {
		return 0, false
	}
	return Int(v)
}

// String returns the value stored under path as a string.
func (o Object) String(path ...string) (string, bool) {
	v, ok := o.Get(path...)
	if !ok {
		return "", false
	}
	return String(v)
}

// Bool returns the value stored under path as a bool.
func (o Object) Bool(path ...string) (bool, bool) {
	v, ok := o.Get(path...)
	if !ok {
		return false, false
	}
	return Bool(v)
}

// Int converts numeric-looking values produced by converters (native
// integers, integral floats, decimal strings) to int.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Round(f)), true
}

// Bool converts OOXML on/off style values.
func Bool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "true", "on":
			return true, true
		case "0", "false", "off", "none":
			return false, true
		}
		return false, false
	}
	if n, ok := Int(v); ok {
		return n != 0, true
	}
	return false, false
}

// String returns v when it is a string, and a decimal rendering of numbers.
func String(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	}
	if n, ok := Int(v); ok {
		return strconv.Itoa(n), true
	}
	return "", false
}
