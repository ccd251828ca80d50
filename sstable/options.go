package sstable

import "github.com/aalhour/kvsstable/internal/logging"

// TableBuilderOptions configures a Builder.
type TableBuilderOptions struct {
	// BlockSize is the soft upper bound on a data block's pre-finish
	// size, in bytes.
	BlockSize int

	// BloomFPR is reserved for a future filter family; the Binary
	// Fuse 8 filter built by this package does not consume it.
	BloomFPR float64

	// MaxTableSize is advisory; enforcing it is the caller's
	// responsibility.
	MaxTableSize int

	// Logger receives non-fatal diagnostics, currently only filter
	// construction failures. Defaults to logging.Discard.
	Logger logging.Logger
}

// DefaultTableBuilderOptions returns the default configuration.
func DefaultTableBuilderOptions() TableBuilderOptions {
	return TableBuilderOptions{
		BlockSize:    64 * 1024,
		BloomFPR:     0.01,
		MaxTableSize: 16 * 1024 * 1024,
		Logger:       logging.Discard,
	}
}

func (o *TableBuilderOptions) backfillDefaults() {
	if o.BlockSize <= 0 {
		o.BlockSize = 64 * 1024
	}
	if o.BloomFPR <= 0 {
		o.BloomFPR = 0.01
	}
	if o.MaxTableSize <= 0 {
		o.MaxTableSize = 16 * 1024 * 1024
	}
	if o.Logger == nil {
		o.Logger = logging.Discard
	}
}
