//go:build cacheline_size_256

package opt

// CacheLineSize_ is pinned by the cacheline_size_256 build tag.
// Use: go build -tags=cacheline_size_256
const CacheLineSize_ uintptr = 256
