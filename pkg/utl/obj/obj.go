package obj

import (
	"github.com/ib-77/utilitarian/pkg/utl/is"
	"github.com/ib-77/utilitarian/pkg/utl/str"
)

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Pick returns the entries of m whose key is listed in keys. Unknown keys are ignored.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Without returns the entries of m whose key is not listed in keys.
func Without[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	skip := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		skip[k] = struct{}{}
	}

	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, ok := skip[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// PruneEmpties drops every entry whose value is empty in the sense of is.Empty.
func PruneEmpties[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		if !is.Empty(v) {
			out[k] = v
		}
	}
	return out
}

// PruneEmptyEntries is PruneEmpties for ordered entries; the order of the
// remaining entries is kept.
func PruneEmptyEntries[K comparable, V any](entries []Entry[K, V]) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(entries))
	for _, e := range entries {
		if !is.Empty(e.Value) {
			out = append(out, e)
		}
	}
	return out
}

// MapEntries rebuilds m through fn. A nil fn copies m. When fn maps two entries
// to the same key the one applied last wins.
func MapEntries[K comparable, V any](m map[K]V, fn func(k K, v V) (K, V)) map[K]V {
	if fn == nil {
		fn = func(k K, v V) (K, V) { return k, v }
	}
	return MapEntriesTo(m, fn)
}

// MapEntriesTo is MapEntries with a change of key and value types.
func MapEntriesTo[K1 comparable, V1 any, K2 comparable, V2 any](m map[K1]V1,
	fn func(k K1, v V1) (K2, V2)) map[K2]V2 {

	out := make(map[K2]V2, len(m))
	if fn == nil {
		return out
	}
	for k, v := range m {
		nk, nv := fn(k, v)
		out[nk] = nv
	}
	return out
}

// MapOrderedEntries applies fn to entries in order; for a repeated key the
// later entry wins.
func MapOrderedEntries[K comparable, V any](entries []Entry[K, V], fn func(k K, v V) (K, V)) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		k, v := e.Key, e.Value
		if fn != nil {
			k, v = fn(k, v)
		}
		out[k] = v
	}
	return out
}

// Entries lists the entries of m in no particular order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

func HasNonEmptyValues[K comparable, V any](m map[K]V) bool {
	for _, v := range m {
		if !is.Empty(v) {
			return true
		}
	}
	return false
}

// FormatObject camelizes snake_case and kebab-case keys.
func FormatObject[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[str.Camelize(k)] = v
	}
	return out
}
