package plain

import "reflect"

// Copy returns a deep copy of v.
//
// Plain objects come back as map[string]any, []any elements are copied
// recursively, and other slices get a fresh backing array. Scalars and
// unknown types are returned as-is.
func Copy(v any) any {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case map[string]any:
		return CopyObject(val)

	case []any:
		result := make([]any, len(val))
		for i, e := range val {
			result[i] = Copy(e)
		}
		return result

	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	}

	if obj, ok := AsObject(v); ok {
		return CopyObject(obj)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && !rv.IsNil() {
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface()
	}
	return v
}

// CopyObject returns a deep copy of m. A nil map copies to an empty map.
func CopyObject(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = Copy(v)
	}
	return result
}
