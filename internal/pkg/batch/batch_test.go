package batch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"haulaway/internal/pkg/batch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIndependent(t *testing.T) {
	ctx := t.Context()

	t.Run("all succeed", func(t *testing.T) {
		result := batch.RunIndependent(ctx, []string{"a", "b", "c"}, func(_ context.Context, _ string) error {
			return nil
		})

		assert.True(t, result.AllSucceeded())
		assert.Equal(t, []string{"a", "b", "c"}, result.Succeeded)
		assert.Empty(t, result.Failed)
	})

	t.Run("a failure never short-circuits siblings", func(t *testing.T) {
		var attempts atomic.Int32
		boom := errors.New("boom")

		result := batch.RunIndependent(ctx, []int{1, 2, 3, 4}, func(_ context.Context, key int) error {
			attempts.Add(1)
			if key == 2 {
				return boom
			}
			return nil
		})

		assert.Equal(t, int32(4), attempts.Load())
		assert.False(t, result.AllSucceeded())
		assert.Equal(t, []int{1, 3, 4}, result.Succeeded)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, 2, result.Failed[0].Key)
		assert.ErrorIs(t, result.Failed[0].Err, boom)
	})

	t.Run("failed keys preserve input order", func(t *testing.T) {
		result := batch.RunIndependent(ctx, []int{5, 6, 7, 8}, func(_ context.Context, key int) error {
			if key%2 == 0 {
				return errors.New("even keys fail")
			}
			return nil
		})

		assert.Equal(t, []int{6, 8}, result.FailedKeys())
		assert.Equal(t, []int{5, 7}, result.Succeeded)
	})

	t.Run("empty input settles immediately", func(t *testing.T) {
		result := batch.RunIndependent(ctx, nil, func(_ context.Context, _ string) error {
			t.Fatal("must not be called")
			return nil
		})

		assert.True(t, result.AllSucceeded())
	})
}
