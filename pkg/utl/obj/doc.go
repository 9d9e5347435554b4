// Package obj derives new maps from existing ones. Nothing here mutates its
// input: every function returns a freshly allocated map or slice, and a nil
// map is treated as an empty one.
package obj
