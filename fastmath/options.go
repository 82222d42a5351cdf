package fastmath

// DefaultParallelThreshold is the block length below which blocks always run
// on the calling goroutine.
const DefaultParallelThreshold = 16384

// Config defines engine construction settings.
type Config struct {
	// TableBits is log2 of the sine table length.
	TableBits int

	// TableSource selects how table samples are computed.
	TableSource TableSource

	// Parallel allows long blocks to be split across a worker pool.
	Parallel bool

	// ParallelThreshold is the minimum block length for parallel execution.
	ParallelThreshold int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: a 4096-entry reference table and
// serial blocks. Build tags fastmath_taylor and fastmath_parallel change the
// source and parallel defaults.
func DefaultConfig() Config {
	return Config{
		TableBits:         DefaultTableBits,
		TableSource:       defaultTableSource,
		Parallel:          defaultParallel,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// WithTableBits sets the table length to 1<<bits.
// Values outside [MinTableBits, MaxTableBits] are ignored.
func WithTableBits(bits int) Option {
	return func(cfg *Config) {
		if bits >= MinTableBits && bits <= MaxTableBits {
			cfg.TableBits = bits
		}
	}
}

// WithTableSource selects the table sample generator. Unknown sources are ignored.
func WithTableSource(src TableSource) Option {
	return func(cfg *Config) {
		if src.valid() {
			cfg.TableSource = src
		}
	}
}

// WithParallel enables or disables the parallel block hint.
func WithParallel(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Parallel = enabled
	}
}

// WithParallelThreshold sets the minimum block length for parallel execution.
func WithParallelThreshold(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.ParallelThreshold = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
