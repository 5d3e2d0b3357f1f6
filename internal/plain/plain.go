// Package plain classifies runtime values as plain objects, sequences,
// scalars or null, and copies plain data without aliasing.
//
// Every component that decides whether to recurse into a value goes through
// [AsObject]. A plain object is a map keyed by strings or numbers; slices,
// arrays, nil, structs and pointers are never plain objects.
package plain

import (
	"reflect"
	"strconv"
)

// Kind is the classification of a runtime value.
type Kind int

const (
	// KindNull is the untyped nil value.
	KindNull Kind = iota
	// KindScalar is any value that is neither an object nor a sequence.
	KindScalar
	// KindSequence is a slice or array.
	KindSequence
	// KindObject is a map keyed by strings or numbers.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindSequence:
		return "sequence"
	case KindObject:
		return "object"
	default:
		return "scalar"
	}
}

// Classify returns the Kind of v.
func Classify(v any) Kind {
	if v == nil {
		return KindNull
	}
	if _, ok := AsObject(v); ok {
		return KindObject
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	}
	return KindScalar
}

// IsObject reports whether v is a plain object.
func IsObject(v any) bool {
	_, ok := AsObject(v)
	return ok
}

// AsObject returns v as a map[string]any when v is a plain object.
//
// map[string]any values are returned as-is. Other map types with string or
// numeric keys (including the map[any]any produced by YAML decoders) are
// converted to a new map[string]any with keys formatted in decimal. A typed
// nil map is an empty object. A map whose keys collide once formatted
// (1 and "1") is not a plain object.
func AsObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	if !validKeyKind(rv.Type().Key().Kind()) {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, ok := keyString(iter.Key())
		if !ok {
			return nil, false
		}
		if _, dup := out[key]; dup {
			return nil, false
		}
		out[key] = iter.Value().Interface()
	}
	return out, true
}

func validKeyKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Interface,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// keyString formats a map key. Interface keys are checked by dynamic type.
func keyString(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", false
		}
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(k.Float(), 'f', -1, 64), true
	}
	return "", false
}
