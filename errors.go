package qoa

import "errors"

// Sentinel errors returned (possibly wrapped with additional context
// via fmt.Errorf's %w) by this package's operations. All are fatal to
// the operation that returned them; there is no partial success.
var (
	// ErrInvalidDescriptor is returned by Encode when samples,
	// samplerate, or channels are zero or out of range.
	ErrInvalidDescriptor = errors.New("qoa: invalid descriptor")

	// ErrMalformed is returned by decode operations when the magic is
	// wrong, the header's sample count is zero, a frame header
	// disagrees with the stream descriptor, a frame declares a size
	// exceeding the remaining buffer, or declared samples exceed what
	// the slice count can hold.
	ErrMalformed = errors.New("qoa: malformed stream")

	// ErrShortRead is returned when the buffer is smaller than
	// MinFileSize, or smaller than a frame header plus its LMS block.
	ErrShortRead = errors.New("qoa: short read")
)
