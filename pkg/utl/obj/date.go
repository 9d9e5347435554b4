package obj

import (
	"math"
	"reflect"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// DateMe turns v into a time. A time is returned as is, a number is read as
// Unix milliseconds and a string is parsed as an RFC 3339, date-only or
// RFC 1123 timestamp. ok is false for anything else.
func DateMe(v any) (t time.Time, ok bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return *d, true
	case string:
		return parseDate(d)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.UnixMilli(rv.Int()).UTC(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return time.UnixMilli(int64(rv.Uint())).UTC(), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return time.Time{}, false
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
