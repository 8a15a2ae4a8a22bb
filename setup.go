package cacheline

import (
	"runtime"

	"github.com/llxisdsh/cacheline/internal/opt"
	"github.com/llxisdsh/cacheline/internal/sysfs"
)

// SetupConfig defines the options accepted by Setup.
type SetupConfig struct {
	// defaultSize is stored before detection runs and survives when
	// Detect is the no-op stub.
	defaultSize uintptr

	// osOverride lets a positive L1 data cache line size published by the
	// operating system replace the detected value.
	osOverride bool

	// sysfsRoot is where the sysfs tree is read from.
	sysfsRoot string
}

// WithDefault sets the size assumed before detection. It replaces the
// compile-time size from the cacheline_size_N tags or golang.org/x/sys.
func WithDefault(size uintptr) func(*SetupConfig) {
	return func(c *SetupConfig) {
		c.defaultSize = size
	}
}

// WithoutOSOverride keeps the CPUID answer even when the operating system
// reports a different L1 data cache line size.
func WithoutOSOverride() func(*SetupConfig) {
	return func(c *SetupConfig) {
		c.osOverride = false
	}
}

// WithSysfsRoot reads the operating system line size from a sysfs tree
// mounted at root. It enables the override on any GOOS, which is mostly
// useful in tests.
func WithSysfsRoot(root string) func(*SetupConfig) {
	return func(c *SetupConfig) {
		c.sysfsRoot = root
		c.osOverride = true
	}
}

// Setup initializes CacheLineSize and returns it as a Config.
//
// The sequence is: store the default, run Detect, then on Linux let the
// kernel's L1 data cache line size win when it is positive. Setup must
// finish before any goroutine reads CacheLineSize.
func Setup(options ...func(*SetupConfig)) Config {
	c := &SetupConfig{
		defaultSize: opt.CacheLineSize_,
		osOverride:  runtime.GOOS == "linux",
		sysfsRoot:   sysfs.DefaultRoot,
	}
	for _, o := range options {
		o(c)
	}

	CacheLineSize = c.defaultSize
	Detect()

	if c.osOverride {
		// A missing or unreadable sysfs is not an error here: the value
		// from Detect stands.
		if size, err := sysfs.L1DataLineSize(c.sysfsRoot); err == nil && size > 0 {
			CacheLineSize = size
		}
	}

	return Config{CacheLineSize: CacheLineSize}
}
