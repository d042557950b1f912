package orxlist

// listConfig collects the construction-time choices shared by both
// variants: how the arena's fragments grow, and which ReclaimPolicy to
// install. Filled in by Option closures before construction.
type listConfig struct {
	fragmentCap  int
	growthFactor float64
	policy       ReclaimPolicy
}

func defaultListConfig() listConfig {
	return listConfig{
		fragmentCap:  16,
		growthFactor: 2.0,
		policy:       DefaultReclaimPolicy(),
	}
}

// Option configures a list at construction time.
type Option[T any] func(*listConfig)

// WithReclaimPolicy selects the memory-reclaim policy (ReclaimThreshold{D}
// or ReclaimNever{}) a list starts with. Default is ReclaimThreshold{D: 2}.
func WithReclaimPolicy[T any](p ReclaimPolicy) Option[T] {
	return func(c *listConfig) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithFragmentCapacity sets the element count of the arena's first
// fragment. Later fragments grow from this by WithFragmentGrowthFactor.
func WithFragmentCapacity[T any](n int) Option[T] {
	return func(c *listConfig) {
		if n > 0 {
			c.fragmentCap = n
		}
	}
}

// WithFragmentGrowthFactor sets the multiplier applied to the previous
// fragment's size when the arena needs to grow. Must be > 1.0.
func WithFragmentGrowthFactor[T any](factor float64) Option[T] {
	return func(c *listConfig) {
		if factor > 1.0 {
			c.growthFactor = factor
		}
	}
}
