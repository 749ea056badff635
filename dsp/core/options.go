package core

// ProcessorConfig defines common image processing settings.
type ProcessorConfig struct {
	// Workers bounds the number of goroutines used for row, column and
	// element loops. 1 keeps processing on the calling goroutine.
	Workers int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the single-threaded default.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Workers: 1,
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
