package storagemodels

import (
	"time"
)

// StreamResult represents a single entry in a stream with metadata
type StreamResult struct {
	Entry *RegistryEntry // The persisted entry
	Error error          // Item-specific error, if any
	Meta  StreamMeta     // Metadata about this item
}

// StreamMeta contains metadata about a streamed entry
type StreamMeta struct {
	Index      int64     // Entry index in stream (0-based)
	PageNumber int       // Storage page number (1-based)
	Timestamp  time.Time // When the entry was retrieved
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize   int           // Channel buffer size (default: 100)
	MaxRetries   int           // Retry attempts for transient errors (default: 3)
	RetryBackoff time.Duration // Backoff between retries (default: 1s)
	PageSize     int32         // Entries per storage page (default: 100)
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize:   100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
		PageSize:     100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) StreamOption {
	return func(opts *StreamOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) StreamOption {
	return func(opts *StreamOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithPageSize sets the storage page size
func WithPageSize(size int32) StreamOption {
	return func(opts *StreamOptions) {
		opts.PageSize = size
	}
}
