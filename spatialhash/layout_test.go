package spatialhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLayoutBucketCapacity(t *testing.T) {
	l, err := deriveLayout(DefaultOptions(), 1000)
	require.NoError(t, err)

	// bucket byte budget must actually fit maxEntriesPerBucket primary
	// entries plus the header byte.
	assert.GreaterOrEqual(t, l.bytesPerBucket, 1+l.maxEntriesPerBucket*l.bytesPerEntry)
	assert.Equal(t, l.maxBuckets&(l.maxBuckets-1), 0, "maxBuckets must be a power of two")
}

func TestAdjustEntriesPerBucket(t *testing.T) {
	assert.Equal(t, 2, adjustEntriesPerBucket(1))
	assert.Equal(t, 5, adjustEntriesPerBucket(4))
	assert.Equal(t, 7, adjustEntriesPerBucket(5))
	assert.Equal(t, 10, adjustEntriesPerBucket(8))
}

func TestDeriveLayoutRejectsOverlyDeepHeadroom(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxEntriesPerBucket = 200
	_, err := deriveLayout(opts, 1000)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestDeriveLayoutRejectsSkipWiderThanKey(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipKeyBeginningBits = 60
	_, err := deriveLayout(opts, 1 << 20)
	assert.ErrorIs(t, err, ErrConfig)
}
