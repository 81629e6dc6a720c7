package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/handshake/pkg/handshake"
	"github.com/ib-77/handshake/pkg/rop"
)

var (
	ErrMismatch        = errors.New("batch: handles and values differ in length")
	ErrDuplicateSide   = errors.New("batch: duplicate side name")
	ErrDuplicateHandle = errors.New("batch: handle listed more than once")
)

// Side is the work of one worker: Values[i] is joined through Handles[i].
type Side[T any] struct {
	Name    string
	Handles []*handshake.Handshake[T]
	Values  []T
}

// Pairs creates n pairs and splits them into a left and a right slice;
// left[i] and right[i] are peers.
func Pairs[T any](n int) (left, right []*handshake.Handshake[T]) {
	left = make([]*handshake.Handshake[T], 0, n)
	right = make([]*handshake.Handshake[T], 0, n)
	for range n {
		u, v := handshake.New[T]()
		left = append(left, u)
		right = append(right, v)
	}
	return left, right
}

// Run joins every handle of every side, one worker per side, and returns the
// results keyed by side name in handle order. Each pair completes on exactly
// one of its two sides.
//
// If ctx is cancelled, the handles a worker has not reached yet are reported
// as cancelled with the context error and, unless disabled with
// WithReleaseRemaining, released so their peers do not wait for them.
func Run[T, U any](ctx context.Context, combine func(peer, own T) U, sides ...Side[T]) (map[string][]rop.Result[U], error) {
	seen := make(map[string]struct{}, len(sides))
	handles := make(map[*handshake.Handshake[T]]struct{})
	for _, s := range sides {
		if len(s.Handles) != len(s.Values) {
			return nil, fmt.Errorf("side %q: %w", s.Name, ErrMismatch)
		}
		if _, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("side %q: %w", s.Name, ErrDuplicateSide)
		}
		seen[s.Name] = struct{}{}

		for i, h := range s.Handles {
			if _, ok := handles[h]; ok {
				return nil, fmt.Errorf("side %q, handle %d (pair %s): %w", s.Name, i, h.ID(), ErrDuplicateHandle)
			}
			handles[h] = struct{}{}
		}
	}

	collected := make([][]rop.Result[U], len(sides))
	g := &errgroup.Group{}
	for i, s := range sides {
		g.Go(func() error {
			res, err := runSide(ctx, s, combine)
			collected[i] = res
			return err
		})
	}
	err := g.Wait()

	out := make(map[string][]rop.Result[U], len(sides))
	for i, s := range sides {
		out[s.Name] = collected[i]
	}
	return out, err
}

func runSide[T, U any](ctx context.Context, side Side[T], combine func(peer, own T) U) ([]rop.Result[U], error) {
	logger := GetLogger(ctx).WithFields(logrus.Fields{
		"side":    side.Name,
		"handles": len(side.Handles),
	})

	results := make([]rop.Result[U], len(side.Handles))
	broken := -1
	completed := 0

	for it := range feed(ctx, side.Handles, func(from int) { broken = from }) {
		res := handshake.Join(it.value, side.Values[it.index], combine)
		results[it.index] = res
		if res.IsSuccess() {
			completed++
		}
		logger.WithFields(logrus.Fields{
			"pair":  res.Id(),
			"index": it.index,
			"state": stateOf[U](res),
		}).Debug("joined")
	}

	if broken >= 0 {
		release := IsReleaseRemainingEnabled(ctx, true)
		for i := broken; i < len(side.Handles); i++ {
			h := side.Handles[i]
			if release {
				h.Release()
			}
			results[i] = rop.Cancel[U](h.ID(), ctx.Err())
		}
		logger.WithFields(logrus.Fields{
			"completed": completed,
			"remaining": len(side.Handles) - broken,
			"released":  release,
		}).Warn("side interrupted")
		return results, fmt.Errorf("side %q: %w", side.Name, ctx.Err())
	}

	logger.WithField("completed", completed).Info("side finished")
	return results, nil
}

// Completed returns the values of the successful results, in order.
func Completed[U any](results []rop.Result[U]) []U {
	out := make([]U, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			out = append(out, r.Result())
		}
	}
	return out
}

func stateOf[U any](r rop.WithPending[U]) string {
	switch {
	case r.IsSuccess():
		return "success"
	case r.IsCancel():
		return "cancel"
	default:
		return "pending"
	}
}
