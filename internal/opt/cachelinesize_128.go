//go:build cacheline_size_128

package opt

// CacheLineSize_ is pinned by the cacheline_size_128 build tag.
// Use: go build -tags=cacheline_size_128
const CacheLineSize_ uintptr = 128
