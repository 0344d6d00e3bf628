package utils

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
	quarterProcs := float64(ParallelFactor) * .25
	if quarterProcs > 8 {
		ParallelFactor = int(quarterProcs)
	}
}

// GroupWorkFunc handles the work items in [from, to) for one group.
type GroupWorkFunc func(ctx context.Context, groupNum, from, to int) error

// GroupWorkParallel splits totalSize work items into at most ParallelFactor contiguous groups and
// runs each group on its own goroutine. The first error, or a panic in any group, cancels the
// context passed to the others and is returned.
func GroupWorkParallel(ctx context.Context, totalSize int, groupWork GroupWorkFunc) error {
	if totalSize <= 0 {
		return ctx.Err()
	}
	numGroups := ParallelFactor
	if numGroups > totalSize {
		numGroups = totalSize
	}
	groupSize := totalSize / numGroups
	extra := totalSize % numGroups

	g, gctx := errgroup.WithContext(ctx)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		groupNum := groupNum
		from := groupSize * groupNum
		to := from + groupSize
		// the last group picks up the remainder
		if groupNum == numGroups-1 {
			to += extra
		}
		g.Go(func() (err error) {
			defer func() {
				if thePanic := recover(); thePanic != nil {
					err = fmt.Errorf("got panic running group %d in parallel: %v", groupNum, thePanic)
				}
			}()
			return groupWork(gctx, groupNum, from, to)
		})
	}
	return g.Wait()
}
