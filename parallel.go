package orxlist

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelForEach splits the list's live slots across workers and applies
// fn to each value concurrently, writing fn's result back into the same
// slot. It is for unordered,
// element-wise mutation workloads: the core guarantee it relies on is
// that live-slot addresses stay stable for the whole call (no implicit
// reclaim runs while the group is in flight, since the list's write lock
// is held for the call's duration). fn must not call back into l.
//
// workers <= 0 is treated as 1. If any fn call returns an error, the shared
// context is cancelled, every other worker stops before its next element,
// and the first error is returned.
func ParallelForEach[T any](ctx context.Context, l *DoublyList[T], workers int, fn func(T) (T, error)) error {
	if workers <= 0 {
		workers = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	positions := make([]int, 0, l.arena.LiveCount())
	for pos := l.front; pos != nullPos; pos = l.arena.At(pos).next {
		positions = append(positions, pos)
	}
	if len(positions) == 0 {
		return nil
	}
	if workers > len(positions) {
		workers = len(positions)
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(positions) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(positions) {
			break
		}
		end := start + chunk
		if end > len(positions) {
			end = len(positions)
		}
		share := positions[start:end]
		g.Go(func() error {
			for _, pos := range share {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				cell := l.arena.At(pos)
				out, err := fn(cell.value)
				if err != nil {
					return err
				}
				cell.value = out
			}
			return nil
		})
	}
	return g.Wait()
}

// ParallelForEachSingly is the SinglyList counterpart of ParallelForEach.
func ParallelForEachSingly[T any](ctx context.Context, l *SinglyList[T], workers int, fn func(T) (T, error)) error {
	if workers <= 0 {
		workers = 1
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	positions := make([]int, 0, l.arena.LiveCount())
	for pos := l.front; pos != nullPos; pos = l.arena.At(pos).next {
		positions = append(positions, pos)
	}
	if len(positions) == 0 {
		return nil
	}
	if workers > len(positions) {
		workers = len(positions)
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(positions) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(positions) {
			break
		}
		end := start + chunk
		if end > len(positions) {
			end = len(positions)
		}
		share := positions[start:end]
		g.Go(func() error {
			for _, pos := range share {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				cell := l.arena.At(pos)
				out, err := fn(cell.value)
				if err != nil {
					return err
				}
				cell.value = out
			}
			return nil
		})
	}
	return g.Wait()
}
