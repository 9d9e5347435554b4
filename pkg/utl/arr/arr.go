package arr

import (
	"math/rand/v2"
	"reflect"
	"slices"
)

func Flatten[T any](seqs [][]T) []T {
	size := 0
	for _, s := range seqs {
		size += len(s)
	}

	out := make([]T, 0, size)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// Unique drops repeated elements, keeping the first occurrence of each.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueByKey keeps one element per distinct key, the first one met. Elements
// for which key reports false are dropped.
func UniqueByKey[T any, K comparable](s []T, key func(T) (K, bool)) []T {
	seen := make(map[K]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		k, ok := key(v)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqueBy keeps one record per distinct value of field. Records missing the
// field, or holding a value that cannot be compared, are dropped.
func UniqueBy(records []map[string]any, field string) []map[string]any {
	return UniqueByKey(records, func(r map[string]any) (any, bool) {
		v, ok := r[field]
		if !ok || v == nil || !reflect.ValueOf(v).Comparable() {
			return nil, false
		}
		return v, true
	})
}

// Intersect returns the elements found in every slice, deduplicated and in the
// order they first appear across seqs. It is empty when seqs is empty or any
// slice in it is empty.
func Intersect[T comparable](seqs [][]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}

	sets := make([]map[T]struct{}, len(seqs))
	for i, s := range seqs {
		if len(s) == 0 {
			return []T{}
		}
		sets[i] = make(map[T]struct{}, len(s))
		for _, v := range s {
			sets[i][v] = struct{}{}
		}
	}

	out := make([]T, 0)
	for _, v := range Unique(Flatten(seqs)) {
		inAll := true
		for _, set := range sets {
			if _, ok := set[v]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, v)
		}
	}
	return out
}

// Move returns a copy of s with the element at from placed at to. A negative
// to moves the element to the front and a to past the end moves it to the
// back. An out of range from yields an unchanged copy.
func Move[T any](s []T, from, to int) []T {
	cloned := slices.Clone(s)
	if cloned == nil {
		cloned = []T{}
	}
	if from < 0 || from >= len(cloned) {
		return cloned
	}

	v := cloned[from]
	cloned = slices.Delete(cloned, from, from+1)
	return slices.Insert(cloned, max(0, min(to, len(cloned))), v)
}

// Shuffle returns a randomly permuted copy of s.
func Shuffle[T any](s []T) []T {
	cloned := slices.Clone(s)
	rand.Shuffle(len(cloned), func(i, j int) {
		cloned[i], cloned[j] = cloned[j], cloned[i]
	})
	return cloned
}

// ArrayMe wraps v in a slice unless it already is one. nil gives an empty slice.
func ArrayMe(v any) []any {
	if v == nil {
		return []any{}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
