package orxlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForEachDoublesEveryValue(t *testing.T) {
	l := NewDoublyFromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	err := ParallelForEach(context.Background(), l, 4, func(v int) (int, error) {
		return v * 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "[2, 4, 6, 8, 10, 12, 14, 16]", l.String())
}

func TestParallelForEachPropagatesFirstError(t *testing.T) {
	l := NewDoublyFromSlice([]int{1, 2, 3, 4})
	boom := errors.New("boom")
	err := ParallelForEach(context.Background(), l, 2, func(v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestParallelForEachSinglyOnEmptyListIsNoop(t *testing.T) {
	l := NewSingly[int]()
	err := ParallelForEachSingly(context.Background(), l, 4, func(v int) (int, error) {
		t.Fatal("fn should not be called on an empty list")
		return v, nil
	})
	require.NoError(t, err)
}
