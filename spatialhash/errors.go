package spatialhash

import "errors"

// Sentinel errors for the spatialhash package.
var (
	// ErrConfig indicates the table was constructed with parameters that
	// cannot produce a valid bucket layout (skipKeyBeginningBits too
	// large for the key width, or a capacity that forces
	// skipKeyEndBits < 0). Detected at Init; the table must not be used.
	ErrConfig = errors.New("spatialhash: configuration cannot produce a valid bucket layout")

	// ErrTableFull indicates an insert's overflow-chain search exhausted
	// its step budget or wrapped every bucket without finding a free
	// slot. The table remains consistent for reads of everything
	// inserted before the failure.
	ErrTableFull = errors.New("spatialhash: overflow chain exhausted, table is full")

	// ErrBadValueLength indicates a value slice whose length does not
	// equal the table's configured BytesPerValue.
	ErrBadValueLength = errors.New("spatialhash: value length does not match configured bytesPerValue")

	// ErrInvalidPoint indicates a latitude/longitude outside WGS-84 range.
	ErrInvalidPoint = errors.New("spatialhash: latitude/longitude out of range")
)
