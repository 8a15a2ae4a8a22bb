//go:build cacheline_size_64

package opt

// CacheLineSize_ is pinned by the cacheline_size_64 build tag.
// Use: go build -tags=cacheline_size_64
const CacheLineSize_ uintptr = 64
