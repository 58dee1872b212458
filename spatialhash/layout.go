// File: layout.go
// Role: functional options + derived bucket-layout arithmetic.
package spatialhash

// Options configures a SpatialHashTable before Init. Defaults match a
// typical deployment: a 56-bit key, 4-byte values, key compression on.
type Options struct {
	SpatialKeyBits       uint
	SkipKeyBeginningBits uint
	MaxEntriesPerBucket  int
	BytesPerValue        int
	KeyCompression       bool
}

// DefaultOptions returns the table's default configuration.
func DefaultOptions() Options {
	return Options{
		SpatialKeyBits:       56,
		SkipKeyBeginningBits: 0,
		MaxEntriesPerBucket:  4,
		BytesPerValue:        4,
		KeyCompression:       true,
	}
}

// Option is a functional option mutating Options before Init.
type Option func(*Options)

// WithSpatialKeyBits overrides the key width (default 56).
func WithSpatialKeyBits(bits uint) Option {
	return func(o *Options) { o.SpatialKeyBits = bits }
}

// WithSkipKeyBeginningBits sets the number of high key bits skipped when
// forming the bucket index, useful when all stored points are known to
// share a coarse region (e.g. one country) and those bits would
// otherwise be wasted entropy.
func WithSkipKeyBeginningBits(bits uint) Option {
	return func(o *Options) { o.SkipKeyBeginningBits = bits }
}

// WithMaxEntriesPerBucket sets the initial per-bucket entry target
// before headroom adjustment; default 4.
func WithMaxEntriesPerBucket(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("spatialhash: MaxEntriesPerBucket must be positive")
		}
		o.MaxEntriesPerBucket = n
	}
}

// WithBytesPerValue sets the fixed value width in [1,8]; default 4.
func WithBytesPerValue(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 8 {
			panic("spatialhash: BytesPerValue must be in [1,8]")
		}
		o.BytesPerValue = n
	}
}

// WithoutKeyCompression disables the X/Y bit-field trick and falls back
// to bucketIndex = |key| mod (maxBuckets-1), storing the full key in
// every entry.
func WithoutKeyCompression() Option {
	return func(o *Options) { o.KeyCompression = false }
}

// layout holds every value derived from Options plus a target entry
// count: bucket sizing, key-field widths, and the bytes-per-entry
// arithmetic the rest of the package builds on.
type layout struct {
	algo *SpatialKeyAlgo

	keyCompression bool
	bytesPerValue  int

	maxEntriesPerBucket int // adjusted, physical per-bucket primary capacity
	maxBuckets          int
	bucketIndexBits     uint

	skipKeyBeginningBits uint
	skipKeyEndBits       int

	bytesPerKeyRest       int
	bytesPerEntry         int
	bytesPerOverflowEntry int
	bytesPerBucket        int
}

// adjustEntriesPerBucket reserves overflow headroom above the caller's
// initial target: <5 -> +1, <8 -> +2, else x1.25.
func adjustEntriesPerBucket(initial int) int {
	switch {
	case initial < 5:
		return initial + 1
	case initial < 8:
		return initial + 2
	default:
		return ceilDiv(initial*5, 4) // x1.25
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// log2 returns the base-2 logarithm of a power-of-two n.
func log2(n int) uint {
	var bits uint
	for n > 1 {
		n >>= 1
		bits++
	}
	return bits
}

func deriveLayout(opts Options, maxEntries int) (layout, error) {
	perBucket := adjustEntriesPerBucket(opts.MaxEntriesPerBucket)
	if perBucket > 127 {
		// the bucket header packs the entry count into 7 bits (n<<1|full
		// in a single byte); a caller asking for more headroom than that
		// is a configuration error, not a runtime one.
		return layout{}, ErrConfig
	}

	numBuckets := ceilDiv(maxEntries, perBucket)
	maxBuckets := nextPow2(numBuckets)
	bucketIndexBits := log2(maxBuckets)

	var bytesPerKeyRest int
	skipKeyEndBits := int(opts.SpatialKeyBits) - int(opts.SkipKeyBeginningBits) - 2*int(bucketIndexBits)

	if opts.KeyCompression {
		if skipKeyEndBits < 0 {
			return layout{}, ErrConfig
		}
		bytesPerKeyRest = ceilDiv(int(opts.SpatialKeyBits)-int(bucketIndexBits), 8)
	} else {
		skipKeyEndBits = 0
		bytesPerKeyRest = ceilDiv(int(opts.SpatialKeyBits), 8)
	}

	bytesPerEntry := bytesPerKeyRest + opts.BytesPerValue
	bytesPerOverflowEntry := bytesPerEntry + 1
	bytesPerBucket := 1 + perBucket*bytesPerEntry

	return layout{
		algo:                  NewSpatialKeyAlgo(opts.SpatialKeyBits),
		keyCompression:        opts.KeyCompression,
		bytesPerValue:         opts.BytesPerValue,
		maxEntriesPerBucket:   perBucket,
		maxBuckets:            maxBuckets,
		bucketIndexBits:       bucketIndexBits,
		skipKeyBeginningBits:  opts.SkipKeyBeginningBits,
		skipKeyEndBits:        skipKeyEndBits,
		bytesPerKeyRest:       bytesPerKeyRest,
		bytesPerEntry:         bytesPerEntry,
		bytesPerOverflowEntry: bytesPerOverflowEntry,
		bytesPerBucket:        bytesPerBucket,
	}, nil
}
