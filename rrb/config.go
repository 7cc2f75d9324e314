package rrb

import "fmt"

const (
	// DefaultBranchBits is the default for Config.BranchBits, i.e. B=32.
	DefaultBranchBits = 5
	// MaxBranchBits limits the branch factor to 1024.
	MaxBranchBits = 10
)

// Config configures the shape of an RRB tree.
type Config struct {
	// BranchBits is the binary logarithm of the branch factor B.
	// Zero selects DefaultBranchBits.
	BranchBits uint
}

// DefaultConfig returns a configuration with branch factor 32.
func DefaultConfig() Config {
	return Config{BranchBits: DefaultBranchBits}
}

func (cfg Config) normalized() Config {
	if cfg.BranchBits == 0 {
		cfg.BranchBits = DefaultBranchBits
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BranchBits > MaxBranchBits {
		return fmt.Errorf("%w: branch bits %d exceed %d", ErrInvalidConfig,
			cfg.BranchBits, MaxBranchBits)
	}
	return nil
}

// Branching returns B, the maximum number of children per node.
func (cfg Config) Branching() int {
	return 1 << cfg.normalized().BranchBits
}
