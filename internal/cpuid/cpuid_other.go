//go:build !(386 || amd64) || !gc || cacheline_noasm

package cpuid

// Supported reports whether Query is available in this build.
const Supported = false
