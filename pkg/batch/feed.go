package batch

import (
	"context"
)

type item[T any] struct {
	index int
	value T
}

// feed emits values in order until they run out or ctx is done. onBreak
// receives the index of the first value that was not emitted.
func feed[T any](ctx context.Context, values []T, onBreak func(from int)) <-chan item[T] {
	in := make(chan item[T])

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				if onBreak != nil {
					onBreak(i)
				}
				return
			}

			select {
			case in <- item[T]{index: i, value: v}:
			case <-ctx.Done():
				if onBreak != nil {
					onBreak(i)
				}
				return
			}
		}
	}()

	return in
}
