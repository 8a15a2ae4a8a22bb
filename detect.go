package cacheline

import "github.com/llxisdsh/cacheline/internal/cpuid"

// Resolve runs the line size decision tree against q.
//
// The extended leaf 0x80000006 is authoritative when present: ECX[7:0]
// holds the line size in bytes. Otherwise leaf 1 gives the CLFLUSH line
// size in EBX[15:8] in units of 8 bytes. When neither leaf exists the
// result is Fallback.
//
// The hardware value is returned as-is, even when it is zero or not a
// power of two. Callers that need sane bounds must apply them.
func Resolve(q QueryFunc) uintptr {
	if maxExt := q(LeafMaxExtended)[cpuid.EAX]; maxExt >= LeafL2Cache {
		return uintptr(q(LeafL2Cache)[cpuid.ECX] & 0xff)
	}

	if maxBasic := q(LeafMaxBasic)[cpuid.EAX]; maxBasic >= LeafFeatures {
		return uintptr((q(LeafFeatures)[cpuid.EBX]&0xff00)>>8) * 8
	}

	// Misconfigured hypervisor or emulator.
	return Fallback
}
