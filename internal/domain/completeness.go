package domain

import (
	"reflect"
	"strings"
)

// Completeness returns the required field names whose value in content is
// absent, nil, a blank string or an empty collection. The order of the
// result follows requiredFields. A complete section yields an empty, non-nil slice.
func Completeness(content Content, requiredFields []string) []string {
	missing := make([]string, 0)
	for _, field := range requiredFields {
		v, ok := content[field]
		if !ok || isEmptyValue(v) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case Content:
		return len(val) == 0
	}

	// Typed collections built outside of JSON decoding.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmptyValue(rv.Elem().Interface())
	}
	return false
}
