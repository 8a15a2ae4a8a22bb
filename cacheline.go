// Package cacheline determines the CPU cache line size so that concurrent
// data structures can be laid out without false sharing.
//
// On 386 and amd64 the size is read from CPUID. Other targets, and builds
// with the cacheline_noasm tag, get a Detect that does nothing and leaves
// CacheLineSize at whatever the host assigned before calling it.
//
// Typical use at startup, before any worker goroutines run:
//
//	cfg := cacheline.Setup()
//	c := cacheline.NewCounter(cfg, runtime.GOMAXPROCS(0))
package cacheline

// CacheLineSize is the process-wide cache line size in bytes.
//
// It is zero until Setup, Detect or the host assigns it. Writes are not
// synchronized: assign it once during initialization and only read it
// afterwards.
var CacheLineSize uintptr

// Fallback is used when the CPU reports neither the extended nor the basic
// leaf needed to find the line size.
const Fallback = 64

// CPUID leaves consulted by Resolve.
const (
	LeafMaxBasic    uint32 = 0x0
	LeafFeatures    uint32 = 0x1
	LeafMaxExtended uint32 = 0x80000000
	LeafL2Cache     uint32 = 0x80000006
)

// Registers is the raw answer to one CPUID query, stored as
// {EAX, EBX, EDX, ECX}.
type Registers [4]uint32

// QueryFunc issues one identification query for leaf.
type QueryFunc func(leaf uint32) Registers

// Config carries the detected cache line size to consumers that prefer
// explicit wiring over reading CacheLineSize.
type Config struct {
	CacheLineSize uintptr `json:"cache_line_size"`
}
