//go:build (386 || amd64) && gc && !cacheline_noasm

package cacheline

import "github.com/llxisdsh/cacheline/internal/cpuid"

// Supported reports whether Detect queries the hardware in this build.
const Supported = cpuid.Supported

// Hardware queries the CPU this process runs on. It is nil in builds
// without CPUID support.
var Hardware QueryFunc = func(leaf uint32) Registers {
	return cpuid.Query(leaf)
}

// Detect queries the CPU and stores the cache line size in CacheLineSize.
// Every call queries the hardware again. It must not run concurrently with
// itself or with readers of CacheLineSize.
func Detect() {
	CacheLineSize = Resolve(Hardware)
}
