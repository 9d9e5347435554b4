// Package utl holds the shared outcome type used across the helper packages.
//
// Highlights:
// - Result[T]: settled outcome (success, fail or cancel) with id and time
// - Success/Fail/Cancel/Settle: construct Result[T]
// - Try/Validate/Map/Finally/Unwrap: work with a settled Result
// - IsNil/GetErrors/IsCancellationError: error and nil helpers
//
// The helpers themselves live in sub-packages: is, obj, arr, str, color, req,
// event, logger and the task runner in stack.
package utl
