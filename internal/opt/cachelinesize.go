//go:build !cacheline_size_32 && !cacheline_size_64 && !cacheline_size_128 && !cacheline_size_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is the compile-time cache line size assumed before
// detection runs. It's taken from the `golang.org/x/sys` package unless a
// cacheline_size_N build tag pins it.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
