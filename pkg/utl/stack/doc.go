// Package stack runs a sequence of work items and collects their results in
// input order.
//
// A Work item is either a plain Value or a Deferred computation, chosen by the
// caller. Both runners return a future: a channel that yields exactly one
// utl.Result and is then closed.
//
// - Stack/StackWith: one item at a time; a failure stops the run and later
//   items never start
// - Spread/SpreadWith: all items at once (bounded by core.WithWorkerOptions);
//   the first failure cancels the shared context, running siblings are waited
//   for and the first error is reported
// - Await: block for the outcome of a future
//
// Deferred computations receive the caller's context. One that ignores it and
// never returns stalls the future; there is no built-in timeout.
package stack
