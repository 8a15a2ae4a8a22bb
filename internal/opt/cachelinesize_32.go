//go:build cacheline_size_32

package opt

// CacheLineSize_ is pinned by the cacheline_size_32 build tag.
// Use: go build -tags=cacheline_size_32
const CacheLineSize_ uintptr = 32
