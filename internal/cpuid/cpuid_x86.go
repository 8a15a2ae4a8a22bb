//go:build (386 || amd64) && gc && !cacheline_noasm

package cpuid

// Supported reports whether Query is available in this build.
const Supported = true

// implemented in cpuid_386.s and cpuid_amd64.s
func cpuid(leaf uint32) (eax, ebx, edx, ecx uint32)

// Query executes CPUID for leaf with a zero sub-leaf and returns
// {EAX, EBX, EDX, ECX}. It touches no shared state.
func Query(leaf uint32) [4]uint32 {
	eax, ebx, edx, ecx := cpuid(leaf)
	return [4]uint32{eax, ebx, edx, ecx}
}
