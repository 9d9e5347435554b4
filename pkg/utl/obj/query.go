package obj

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/ib-77/utilitarian/pkg/utl/is"
)

// StringifyArrayValues keeps string, number, bool and time values as they are,
// joins non-empty slices with commas and drops everything else.
func StringifyArrayValues(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch {
		case is.StringNumberBoolOrDate(v):
			out[k] = v
		case is.Array(v) && !is.Empty(v):
			out[k] = strings.Join(stringElems(v), ",")
		}
	}
	return out
}

// ToURI serializes m to a query string with keys in sorted order. Slice values
// are written as [a,b]. When dontEncode is false keys and values are escaped
// the way encodeURIComponent does.
func ToURI(m map[string]any, dontEncode bool) string {
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		paramVal := fmt.Sprint(v)
		if is.Array(v) {
			paramVal = "[" + strings.Join(stringElems(v), ",") + "]"
		}

		if dontEncode {
			parts = append(parts, k+"="+paramVal)
		} else {
			parts = append(parts, encodeComponent(k)+"="+encodeComponent(paramVal))
		}
	}
	return strings.Join(parts, "&")
}

// ToParam serializes m as {key:value,...} with keys in sorted order.
// Non-numeric values are double quoted.
func ToParam(m map[string]any, dontEncode bool) string {
	if m == nil {
		return ""
	}

	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		var vals string
		if is.Array(v) {
			elems := arrayElems(v)
			quoted := make([]string, len(elems))
			for i, e := range elems {
				quoted[i] = quoteNonNumeric(e)
			}
			vals = "[" + strings.Join(quoted, ",") + "]"
		} else {
			vals = quoteNonNumeric(v)
		}
		parts = append(parts, k+":"+vals)
	}

	param := "{" + strings.Join(parts, ",") + "}"
	if dontEncode {
		return param
	}
	return encodeComponent(param)
}

func quoteNonNumeric(v any) string {
	s := fmt.Sprint(v)
	if numeric(v) {
		return s
	}
	return `"` + s + `"`
}

func numeric(v any) bool {
	if is.Number(v) || is.Boolean(v) {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// componentUnescape restores what encodeURIComponent leaves alone but
// url.QueryEscape escapes.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

func arrayElems(v any) []any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func stringElems(v any) []string {
	elems := arrayElems(v)
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = fmt.Sprint(e)
	}
	return out
}
