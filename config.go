package blochviz

// Config holds the knobs shared by the engine, tracker and trajectory generator.
type Config struct {
	FramesPerGate int
	MaxOperations int
	Tolerance     float64
}

func NewConfig() *Config {
	return &Config{
		FramesPerGate: 30,
		MaxOperations: 10,
		Tolerance:     1e-9,
	}
}

// Option is a function type for configuring a Config
type Option func(*Config)

// WithFramesPerGate sets how many points each gate animation produces
func WithFramesPerGate(frames int) Option {
	return func(c *Config) {
		c.FramesPerGate = frames
	}
}

// WithMaxOperations sets the operation cap after which input is disabled
func WithMaxOperations(max int) Option {
	return func(c *Config) {
		c.MaxOperations = max
	}
}

// WithTolerance sets the numeric tolerance for norm and degeneracy checks
func WithTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.Tolerance = tolerance
	}
}

func applyOptions(opts []Option) *Config {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
