package cacheline

import (
	"math/rand/v2"
	"sync/atomic"
	"unsafe"
)

const wordSize = unsafe.Sizeof(uintptr(0))

// Counter is a striped counter. Each stripe lives at least one cache line
// away from its neighbours, so goroutines adding on different stripes do
// not contend on the same line.
//
// The stripe spacing comes from Config.CacheLineSize. Sizes that are zero
// or not a multiple of the word size are rounded up to one; sizes above
// 4 KiB are capped.
type Counter struct {
	_      noCopy
	slots  []uintptr
	stride int // in words
	mask   int
}

// NewCounter returns a Counter with stripes rounded up to a power of two.
func NewCounter(cfg Config, stripes int) *Counter {
	stride := strideWords(cfg.CacheLineSize)
	n := nextPowOf2(stripes)
	return &Counter{
		slots:  make([]uintptr, n*stride),
		stride: stride,
		mask:   n - 1,
	}
}

// Stripes returns the number of stripes.
func (c *Counter) Stripes() int {
	return c.mask + 1
}

// Stride returns the distance between two stripes in bytes.
func (c *Counter) Stride() uintptr {
	return uintptr(c.stride) * wordSize
}

// Add adds delta to a randomly chosen stripe.
func (c *Counter) Add(delta int) {
	c.AddAt(int(rand.Uint32()), delta)
}

// AddAt adds delta to the stripe selected by hint, typically a worker id
// or a hash.
func (c *Counter) AddAt(hint, delta int) {
	atomic.AddUintptr(c.at(hint&c.mask), uintptr(delta))
}

// Value sums all stripes. It is not a snapshot: concurrent Adds may or may
// not be included.
func (c *Counter) Value() int {
	var sum uintptr
	for i := 0; i <= c.mask; i++ {
		sum += atomic.LoadUintptr(c.at(i))
	}
	return int(sum)
}

// Reset zeroes every stripe.
func (c *Counter) Reset() {
	for i := 0; i <= c.mask; i++ {
		atomic.StoreUintptr(c.at(i), 0)
	}
}

//go:nosplit
func (c *Counter) at(i int) *uintptr {
	return &c.slots[i*c.stride]
}

// maxStride bounds the stripe spacing; larger line sizes are bogus.
const maxStride = 4 << 10

func strideWords(lineSize uintptr) int {
	lineSize = min(lineSize, maxStride)
	return max(int((lineSize+wordSize-1)/wordSize), 1)
}

const intSize = 32 << (^uint(0) >> 63) // 32 or 64

// nextPowOf2 calculates the smallest power of 2 that is greater than or equal
// to n.
// Compatible with both 32-bit and 64-bit systems.
//
//go:nosplit
func nextPowOf2(n int) int {
	if n <= 0 {
		return 1
	}
	v := n - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	if intSize == 64 {
		v |= v >> 32
	}
	return v + 1
}

// noCopy may be added to structs which must not be copied
// after the first use.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
