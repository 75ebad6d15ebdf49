package interval

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// Canonicalize returns the Interval in its half-open form [lower, upper) using the Steps of the DefaultStepRegistry (or
// the one provided via WithStepRegistry).
func Canonicalize(interval *Interval, opts ...options.Option[canonicalizeOptions]) *Interval {
	return CanonicalizeTo(interval, true, false, opts...)
}

// CanonicalizeTo returns an Interval whose bounded ends carry the requested inclusivity.
//
// Discrete Values are moved to their neighbor so the set of contained Values stays the same, i.e. [1, 4] becomes
// [1, 5) and (1, 7) requested as closed becomes [2, 6]. If the neighbor does not exist, an inclusive end that should
// become exclusive is turned unbounded and an exclusive end that should become inclusive is kept as it is. Continuous
// Values keep their value and only flip the flag, which changes the contained set by that single point.
//
// Unbounded ends stay unbounded. The result is not validated, so empty Intervals may come back with crossed ends.
func CanonicalizeTo(interval *Interval, lowerInclusive bool, upperInclusive bool, opts ...options.Option[canonicalizeOptions]) *Interval {
	canonicalizer := options.Apply(&canonicalizeOptions{
		registry: DefaultStepRegistry,
	}, opts)

	return &Interval{
		lowerEndPoint: canonicalizer.lowerEndPoint(interval.lowerEndPoint, lowerInclusive),
		upperEndPoint: canonicalizer.upperEndPoint(interval.upperEndPoint, upperInclusive),
	}
}

// WithStepRegistry sets the StepRegistry that is used to look up the Steps of the Values.
func WithStepRegistry(registry *StepRegistry) options.Option[canonicalizeOptions] {
	return func(c *canonicalizeOptions) {
		c.registry = registry
	}
}

// IsEmpty returns true if the Interval does not contain any Value. Discrete Intervals like (1, 2) are detected by
// looking at their closed form.
func (i *Interval) IsEmpty(opts ...options.Option[canonicalizeOptions]) bool {
	if i.crossed() {
		return true
	}

	closed := CanonicalizeTo(i, true, true, opts...)

	// an end that stays exclusive has no neighbor inside the domain (i.e. (MaxInt64, inf))
	return closed.crossed() ||
		(closed.lowerEndPoint != nil && !closed.lowerEndPoint.Inclusive()) ||
		(closed.upperEndPoint != nil && !closed.upperEndPoint.Inclusive())
}

// crossed returns true if the ends of the Interval leave no room for a Value.
func (i *Interval) crossed() bool {
	if i.lowerEndPoint == nil || i.upperEndPoint == nil {
		return false
	}

	switch i.lowerEndPoint.value.Compare(i.upperEndPoint.value) {
	case 1:
		return true
	case 0:
		return !i.lowerEndPoint.Inclusive() || !i.upperEndPoint.Inclusive()
	default:
		return false
	}
}

type canonicalizeOptions struct {
	registry *StepRegistry
}

func (c *canonicalizeOptions) lowerEndPoint(endPoint *EndPoint, inclusive bool) *EndPoint {
	if endPoint == nil || endPoint.Inclusive() == inclusive {
		return endPoint
	}

	step, discrete := c.registry.Step(endPoint.value)
	if !discrete {
		return NewEndPoint(endPoint.value, BoundTypeFromInclusive(inclusive))
	}

	if inclusive {
		// (v becomes [next
		if next, ok := step.Next(endPoint.value); ok {
			return NewEndPoint(next, BoundTypeClosed)
		}

		return endPoint
	}

	// [v becomes (prev
	if prev, ok := step.Prev(endPoint.value); ok {
		return NewEndPoint(prev, BoundTypeOpen)
	}

	return nil
}

func (c *canonicalizeOptions) upperEndPoint(endPoint *EndPoint, inclusive bool) *EndPoint {
	if endPoint == nil || endPoint.Inclusive() == inclusive {
		return endPoint
	}

	step, discrete := c.registry.Step(endPoint.value)
	if !discrete {
		return NewEndPoint(endPoint.value, BoundTypeFromInclusive(inclusive))
	}

	if inclusive {
		// v) becomes prev]
		if prev, ok := step.Prev(endPoint.value); ok {
			return NewEndPoint(prev, BoundTypeClosed)
		}

		return endPoint
	}

	// v] becomes next)
	if next, ok := step.Next(endPoint.value); ok {
		return NewEndPoint(next, BoundTypeOpen)
	}

	return nil
}
