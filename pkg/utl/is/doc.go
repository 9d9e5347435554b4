// Package is classifies arbitrary values without panicking.
//
// Every predicate is total: nil, typed nil pointers and unexported kinds all
// yield a plain false or true. Non-nil pointers are looked through, so *[]int
// classifies the same way as []int.
//
// Highlights:
// - Number/String/Boolean/Array/Object/Function/Date/RegExp: category checks
// - Empty: nil, "", zero-length slices and zero-entry maps
// - Truthy/DeeplyTruthy: truthiness extended to nested slices and maps
// - ValidEmail/ValidPassword/ValidURI/ValidImageURI/ParsePort: input validators
package is
