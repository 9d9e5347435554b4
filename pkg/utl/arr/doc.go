// Package arr derives new slices from existing ones without touching the input.
//
// Highlights:
// - Intersect: elements shared by every slice, deduplicated
// - Unique/UniqueBy/UniqueByKey: first occurrence wins, order kept
// - Move: relocate one element with the target index clamped
// - Flatten/Shuffle/ArrayMe
package arr
