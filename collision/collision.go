// Package collision queries derived hitboxes against sets of labeled axis-aligned targets.
package collision

import (
	"context"
	"math"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/bettercombat/hitbox/logging"
	"github.com/bettercombat/hitbox/spatialmath"
	"github.com/bettercombat/hitbox/utils"
)

const (
	// Below this many targets a query runs on the calling goroutine.
	parallelThreshold = 64

	// Slack added to the hitbox bounds, relative to their distance from the origin, so that rounding
	// never rejects a touching target.
	broadphaseMargin = 1e-9
)

// Target is a named axis-aligned box that a hitbox can be tested against.
type Target struct {
	Label string
	Box   spatialmath.AxisAlignedBox
}

// Checker holds a set of targets and reports which of them a hitbox overlaps. Targets can be added
// while queries are running; a query sees the targets present when it started.
type Checker struct {
	logger logging.Logger

	mu      sync.RWMutex
	targets []Target
}

// NewChecker returns a Checker over the given targets. A nil logger discards query logs.
func NewChecker(logger logging.Logger, targets ...Target) *Checker {
	if logger == nil {
		logger = logging.NewBlankLogger("collision")
	}
	c := &Checker{logger: logger}
	c.Add(targets...)
	return c
}

// Add appends targets to the checker. Target boxes whose corners are given in the wrong order are
// stored with their corners reordered.
func (c *Checker) Add(targets ...Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, target := range targets {
		target.Box = spatialmath.NewAxisAlignedBox(target.Box.Min, target.Box.Max)
		c.targets = append(c.targets, target)
	}
}

// Len returns the number of targets.
func (c *Checker) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.targets)
}

// Intersecting returns the targets the hitbox overlaps, in the order they were added. Touching
// counts as overlap. Large target sets are split across goroutines that share the hitbox
// read-only.
func (c *Checker) Intersecting(ctx context.Context, hitbox *spatialmath.DerivedBox) ([]Target, error) {
	if hitbox == nil {
		return nil, errors.New("cannot query a nil hitbox")
	}
	c.mu.RLock()
	targets := c.targets[:len(c.targets):len(c.targets)]
	c.mu.RUnlock()

	bounds := hitbox.BoundingAABB()
	bounds = bounds.Expand(broadphaseMargin * math.Max(1, math.Max(maxAbs(bounds.Min), maxAbs(bounds.Max))))
	hits := make([]bool, len(targets))
	checkRange := func(ctx context.Context, from, to int) error {
		for i := from; i < to; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			// cheap reject before the full separating axis test
			if !bounds.Overlaps(targets[i].Box) {
				continue
			}
			hits[i] = hitbox.Intersects(targets[i].Box)
		}
		return nil
	}

	var err error
	if len(targets) < parallelThreshold {
		err = checkRange(ctx, 0, len(targets))
	} else {
		err = utils.GroupWorkParallel(ctx, len(targets), func(ctx context.Context, _, from, to int) error {
			return checkRange(ctx, from, to)
		})
	}
	if err != nil {
		return nil, err
	}

	out := lo.Filter(targets, func(_ Target, i int) bool { return hits[i] })
	c.logger.Debugw("hitbox query", "hitbox", hitbox.Box().String(), "targets", len(targets), "hits", len(out))
	return out, nil
}

func maxAbs(v r3.Vector) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}
