package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	StackOptionKey  OptionKey = "stack_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type StackOptions struct {
	StopOnCancel bool
}

// WithWorkerOptions bounds how many items a concurrent run may execute at once.
// Values below 1 mean no limit.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// WithStackOptions controls whether a sequential run checks ctx between items.
func WithStackOptions(ctx context.Context, stopOnCancel bool) context.Context {
	return context.WithValue(ctx, StackOptionKey, StackOptions{StopOnCancel: stopOnCancel})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsStopOnCancelEnabled(ctx context.Context, defaultStopOnCancel bool) bool {
	options, ok := ctx.Value(StackOptionKey).(StackOptions)
	if ok {
		return options.StopOnCancel
	}
	return defaultStopOnCancel
}
