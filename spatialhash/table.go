// File: table.go
// Role: SpatialHashTable public API — Init, Add/InsertKey, Query/QueryKey,
//       GetNodesShape/GetNodesCircle (region query via quadtree descent),
//       Size/Clear/MemoryUsageBytes.
// Concurrency: mu guards the whole buffer; the builder phase
//       (Add/InsertKey) is single-writer, the same RWMutex convention
//       core.Graph uses for its vertex/edge maps, but here writes and
//       reads never interleave safely once a routing service starts
//       serving queries.
package spatialhash

import (
	"bytes"
	"sync"

	"github.com/katalvlaran/roadquery/geo"
)

// Entry is one (lat, lon, value) triple returned by a query.
type Entry struct {
	Lat, Lon float64
	Value    []byte
}

// SpatialHashTable is a fixed-capacity byte-packed spatial index. It
// must be constructed with New and sized with Init before any Add.
type SpatialHashTable struct {
	mu     sync.RWMutex
	opts   Options
	layout layout
	buf    []byte
	size   int
}

// New returns an unsized table; call Init before adding entries.
func New(opts ...Option) *SpatialHashTable {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SpatialHashTable{opts: o}
}

// Init sizes the table for maxEntries, deriving the bucket layout.
// Returns ErrConfig if the configuration cannot produce a valid layout
// (skip bits too wide for the key, or skipKeyEndBits < 0).
func (t *SpatialHashTable) Init(maxEntries int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, err := deriveLayout(t.opts, maxEntries)
	if err != nil {
		return err
	}
	t.layout = l
	t.buf = make([]byte, l.maxBuckets*l.bytesPerBucket)
	t.size = 0
	return nil
}

// KeyAlgo returns the table's spatial key algorithm.
func (t *SpatialHashTable) KeyAlgo() *SpatialKeyAlgo { return t.layout.algo }

// DecodingErrorRadiusMeters is the maximum distance Decode(Encode(p))
// can land from p, given this table's key width.
func (t *SpatialHashTable) DecodingErrorRadiusMeters() float64 {
	return t.layout.algo.DecodingErrorRadiusMeters()
}

// BytesPerBucket exposes the derived physical bucket size, useful for
// callers (and tests) checking the layout stays within its budget.
func (t *SpatialHashTable) BytesPerBucket() int { return t.layout.bytesPerBucket }

// MaxBuckets returns the number of buckets the table was sized with.
func (t *SpatialHashTable) MaxBuckets() int { return t.layout.maxBuckets }

// Add encodes (lat, lon) into a key and inserts it with value.
func (t *SpatialHashTable) Add(lat, lon float64, value []byte) error {
	p := geo.Point{Lat: lat, Lon: lon}
	if !p.IsValid() {
		return ErrInvalidPoint
	}
	return t.InsertKey(t.layout.algo.Encode(lat, lon), value)
}

// InsertKey inserts a pre-encoded key directly; duplicate keys are
// allowed and both copies are retrievable afterward.
func (t *SpatialHashTable) InsertKey(key uint64, value []byte) error {
	if len(value) != t.layout.bytesPerValue {
		return ErrBadValueLength
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	bi := t.layout.bucketIndexOf(key)
	storedKey := t.layout.storedKeyBytes(key)

	n, full := t.header(bi)
	if !full {
		if t.insertEntry(bi, storedKey, value) {
			t.size++
			return nil
		}
		t.setHeader(bi, n, true) // no in-place room left; start overflowing
	}

	if err := t.appendOverflow(bi, storedKey, value); err != nil {
		return err
	}
	t.size++
	return nil
}

// Query returns every entry whose key matches the encoding of (lat, lon).
func (t *SpatialHashTable) Query(lat, lon float64) []Entry {
	return t.QueryKey(t.layout.algo.Encode(lat, lon))
}

// QueryKey returns every entry stored under key.
func (t *SpatialHashTable) QueryKey(key uint64) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	bi := t.layout.bucketIndexOf(key)
	storedKey := t.layout.storedKeyBytes(key)

	var out []Entry
	n, full := t.header(bi)
	base := t.bucketStart(bi) + 1
	for i := 0; i < n; i++ {
		addr := base + i*t.layout.bytesPerEntry
		sk := t.buf[addr : addr+t.layout.bytesPerKeyRest]
		if bytes.Equal(sk, storedKey) {
			out = append(out, t.decodeEntryAt(bi, addr, t.layout.bytesPerKeyRest))
		}
	}
	if !full {
		return out
	}

	cur := bi
	offset := 0
	for steps := 0; steps < t.layout.maxBuckets; steps++ {
		cur = (cur + 1) % t.layout.maxBuckets
		offset++
		addr, ok := t.findOverflowByOffset(cur, offset)
		if !ok {
			// appendOverflow skips buckets whose overflow region was
			// full at insert time, so a link can sit further out than
			// the next offset; keep walking instead of stopping here.
			continue
		}
		sk := t.buf[addr+1 : addr+1+t.layout.bytesPerKeyRest]
		if bytes.Equal(sk, storedKey) {
			out = append(out, t.decodeEntryAt(bi, addr+1, t.layout.bytesPerKeyRest))
		}
		if t.buf[addr]&1 == 1 {
			break
		}
	}
	return out
}

// GetNodesShape returns every stored entry whose decoded point lies
// within shape. With key compression enabled, buckets are found by a
// quadtree descent over the key space, pruning whole quadrants that
// fall outside shape. Key compression derives the bucket index from
// the key's interleaved X/Y bit fields, which is what makes that
// descent possible; with WithoutKeyCompression the bucket index is a
// plain modulo of the full key and has no such spatial locality to
// descend, so every bucket is scanned directly instead.
func (t *SpatialHashTable) GetNodesShape(shape geo.Shape) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Entry
	if !t.layout.keyCompression {
		for bi := 0; bi < t.layout.maxBuckets; bi++ {
			t.collectBucket(bi, shape, &out)
		}
		return out
	}

	visited := make([]bool, t.layout.maxBuckets)
	need := int(t.layout.skipKeyBeginningBits) + 2*int(t.layout.bucketIndexBits)
	threshold := need
	if threshold%2 != 0 {
		threshold++
	}

	t.descend(geo.WorldBBox(), 0, 0, shape, threshold, need, visited, &out)
	return out
}

// GetNodesCircle is GetNodesShape specialized to a circle query.
func (t *SpatialHashTable) GetNodesCircle(lat, lon, radiusMeters float64) []Entry {
	return t.GetNodesShape(geo.Circle{Center: geo.Point{Lat: lat, Lon: lon}, Radius: radiusMeters})
}

func (t *SpatialHashTable) descend(box geo.BBox, bitDepth int, prefix uint64, shape geo.Shape, threshold, need int, visited []bool, out *[]Entry) {
	if !shape.IntersectsBBox(box) {
		return
	}
	if bitDepth >= threshold {
		bi := bucketIndexFromPrefix(prefix, bitDepth, need, t.layout.bucketIndexBits)
		if visited[bi] {
			return
		}
		visited[bi] = true
		t.collectBucket(bi, shape, out)
		return
	}
	for _, pat := range [4]int{0b10, 0b11, 0b00, 0b01} {
		child := box.Quadrant(pat)
		t.descend(child, bitDepth+2, prefix<<2|uint64(pat), shape, threshold, need, visited, out)
	}
}

// bucketIndexFromPrefix recovers bucketIndex = X^Y from the first `need`
// bits of the `bitDepth`-bit prefix accumulated during descent.
func bucketIndexFromPrefix(prefix uint64, bitDepth, need int, bucketIndexBits uint) int {
	trimmed := prefix >> uint(bitDepth-need)
	y := trimmed & mask64(int(bucketIndexBits))
	x := (trimmed >> bucketIndexBits) & mask64(int(bucketIndexBits))
	return int((x ^ y) & mask64(int(bucketIndexBits)))
}

func (t *SpatialHashTable) collectBucket(bi int, shape geo.Shape, out *[]Entry) {
	n, full := t.header(bi)
	base := t.bucketStart(bi) + 1
	for i := 0; i < n; i++ {
		addr := base + i*t.layout.bytesPerEntry
		e := t.decodeEntryAt(bi, addr, t.layout.bytesPerKeyRest)
		if shape.Contains(geo.Point{Lat: e.Lat, Lon: e.Lon}) {
			*out = append(*out, e)
		}
	}
	if !full {
		return
	}

	cur := bi
	offset := 0
	for steps := 0; steps < t.layout.maxBuckets; steps++ {
		cur = (cur + 1) % t.layout.maxBuckets
		offset++
		addr, ok := t.findOverflowByOffset(cur, offset)
		if !ok {
			continue
		}
		e := t.decodeEntryAt(bi, addr+1, t.layout.bytesPerKeyRest)
		if shape.Contains(geo.Point{Lat: e.Lat, Lon: e.Lon}) {
			*out = append(*out, e)
		}
		if t.buf[addr]&1 == 1 {
			break
		}
	}
}

func (t *SpatialHashTable) decodeEntryAt(owner, addr, keyRestLen int) Entry {
	sk := t.buf[addr : addr+keyRestLen]
	val := append([]byte(nil), t.buf[addr+keyRestLen:addr+t.layout.bytesPerEntry]...)
	lat, lon := t.layout.algo.Decode(t.layout.reconstructKey(owner, sk))
	return Entry{Lat: lat, Lon: lon, Value: val}
}

// Size returns the number of entries successfully inserted so far.
func (t *SpatialHashTable) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Clear zeroes the backing buffer and resets Size to 0; the layout
// (bucket count, entry widths) is unchanged.
func (t *SpatialHashTable) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.buf {
		t.buf[i] = 0
	}
	t.size = 0
}

// MemoryUsageBytes returns the size of the backing byte buffer.
func (t *SpatialHashTable) MemoryUsageBytes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.buf)
}
