package wad

import "log/slog"

// Default resource limits applied by Load and Read.
const (
	// DefaultMaxFileSize caps the size of a loaded (decompressed) file.
	DefaultMaxFileSize = 4 << 30

	// DefaultMaxDecoderMemory caps the memory used by the zstd decoder.
	DefaultMaxDecoderMemory = 256 << 20
)

// Option configures Load, Read, and Parse.
type Option func(*config)

type config struct {
	maxFileSize      uint64
	maxDecoderMemory uint64
	logger           *slog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		maxFileSize:      DefaultMaxFileSize,
		maxDecoderMemory: DefaultMaxDecoderMemory,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// WithMaxFileSize limits the size of the file read by Load and Read, after
// decompression. Set limit to 0 to disable the limit.
func WithMaxFileSize(limit uint64) Option {
	return func(c *config) {
		c.maxFileSize = limit
	}
}

// WithMaxDecoderMemory limits the memory used when decoding a compressed
// file. Set limit to 0 to disable the limit.
func WithMaxDecoderMemory(limit uint64) Option {
	return func(c *config) {
		c.maxDecoderMemory = limit
	}
}

// WithLogger sets the logger for diagnostic output.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
