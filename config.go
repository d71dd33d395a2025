package bdeque

import "fmt"

// DefaultInf is the lower occupancy bound of blocks if not configured otherwise.
const DefaultInf = 150

// MaxInf is the largest accepted lower occupancy bound. Every block allocates
// 4·Inf slots upfront.
const MaxInf = 1 << 20

// Config configures the block occupancy bounds of a deque.
//
// Inf is the merge threshold: two neighbouring blocks holding fewer than Inf
// elements together are merged. The split threshold Sup is always 4·Inf.
// A zero Config is valid and uses DefaultInf.
type Config struct {
	Inf int
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{Inf: DefaultInf}
}

// Sup returns the block capacity, i.e. the split threshold.
func (cfg Config) Sup() int {
	return 4 * cfg.normalized().Inf
}

func (cfg Config) normalized() Config {
	if cfg.Inf == 0 {
		cfg.Inf = DefaultInf
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Inf < 1 {
		return fmt.Errorf("%w: inf must be positive, is %d", ErrInvalidConfig, cfg.Inf)
	} else if cfg.Inf > MaxInf {
		return fmt.Errorf("%w: inf must not exceed %d, is %d", ErrInvalidConfig, MaxInf, cfg.Inf)
	}
	return nil
}
