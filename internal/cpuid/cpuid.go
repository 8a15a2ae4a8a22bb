// Package cpuid issues the x86 CPUID instruction.
//
// Query is only compiled for 386 and amd64 gc builds without the
// cacheline_noasm tag. Other builds get Supported == false and no Query.
package cpuid

// Register indexes of a Query result. EDX comes before ECX, the order in
// which the vendor string of leaf 0 is laid out.
const (
	EAX = 0
	EBX = 1
	EDX = 2
	ECX = 3
)
