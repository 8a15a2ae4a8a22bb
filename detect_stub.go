//go:build !(386 || amd64) || !gc || cacheline_noasm

package cacheline

import "github.com/llxisdsh/cacheline/internal/cpuid"

// Supported reports whether Detect queries the hardware in this build.
const Supported = cpuid.Supported

// Hardware is nil: this build cannot query the CPU.
var Hardware QueryFunc

// Detect does nothing on this platform; CacheLineSize keeps its value.
func Detect() {}
