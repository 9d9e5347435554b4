package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 7, GetWorkerMaxCount(ctx, 7))
	assert.True(t, IsStopOnCancelEnabled(ctx, true))

	ctx = WithStackOptions(WithWorkerOptions(ctx, 3), false)
	assert.Equal(t, 3, GetWorkerMaxCount(ctx, 7))
	assert.False(t, IsStopOnCancelEnabled(ctx, true))
}

func TestFromChanFirstOrDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 9, FromChanFirstOrDefault(ctx, Once(9), -1))

	closed := make(chan int)
	close(closed)
	assert.Equal(t, -1, FromChanFirstOrDefault(ctx, closed, -1))

	timeout, cancel := context.WithTimeout(ctx, time.Millisecond)
	defer cancel()
	assert.Equal(t, -1, FromChanFirstOrDefault(timeout, make(chan int), -1))
}
