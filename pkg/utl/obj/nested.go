package obj

import (
	"strings"
)

// GetNestedProperty walks m along a dot separated path such as "a.b.c". ok is
// false when any segment is missing or a non-map value is met before the end.
func GetNestedProperty(m map[string]any, dotPath string) (value any, ok bool) {
	if dotPath == "" {
		return nil, false
	}

	var current any = m
	for _, prop := range strings.Split(dotPath, ".") {
		group, isMap := current.(map[string]any)
		if !isMap {
			return nil, false
		}
		if current, ok = group[prop]; !ok {
			return nil, false
		}
	}
	return current, true
}

// Nested is GetNestedProperty returning def for a missing path.
func Nested(m map[string]any, dotPath string, def any) any {
	if v, ok := GetNestedProperty(m, dotPath); ok {
		return v
	}
	return def
}
