// Package report compares the detected cache line size with the values
// other libraries and the operating system arrive at.
package report

import (
	"context"
	"unsafe"

	kcpuid "github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/llxisdsh/cacheline"
	"github.com/llxisdsh/cacheline/internal/opt"
	"github.com/llxisdsh/cacheline/internal/sysfs"
)

// Source names, in report order.
const (
	SourceCPUID     = "cpuid"
	SourceBuild     = "build"
	SourceXSys      = "x/sys/cpu"
	SourcePB        = "pb"
	SourceKlauspost = "klauspost/cpuid"
	SourceSysfs     = "sysfs"
)

var (
	errUnsupported  = errors.New("cpuid not available in this build")
	errUndetectable = errors.New("line size undetectable")
	errOSDisabled   = errors.New("operating system source disabled")
)

// Source is one answer to "how big is a cache line".
type Source struct {
	Name string  `json:"name"`
	Size uintptr `json:"size"`
	Err  string  `json:"error,omitempty"`
}

// OK reports whether the source produced a value.
func (s Source) OK() bool {
	return s.Err == ""
}

// Report lists every source in a fixed order.
type Report struct {
	Sources []Source `json:"sources"`
}

// Consistent reports whether all sources that produced a value agree.
func (r Report) Consistent() bool {
	var (
		first uintptr
		seen  bool
	)
	for _, s := range r.Sources {
		if !s.OK() {
			continue
		}
		if !seen {
			first, seen = s.Size, true
		} else if s.Size != first {
			return false
		}
	}
	return true
}

// Options configures Collect.
type Options struct {
	// SysfsRoot is where sysfs is read from. Empty means sysfs.DefaultRoot.
	SysfsRoot string
	// NoOS skips the operating system source.
	NoOS bool
	// Logger receives one debug line per source. Nil uses the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

type probe struct {
	name string
	fn   func() (uintptr, error)
}

func probes(opts Options) []probe {
	root := opts.SysfsRoot
	if root == "" {
		root = sysfs.DefaultRoot
	}
	return []probe{
		{SourceCPUID, func() (uintptr, error) {
			if cacheline.Hardware == nil {
				return 0, errUnsupported
			}
			return cacheline.Resolve(cacheline.Hardware), nil
		}},
		{SourceBuild, func() (uintptr, error) {
			return opt.CacheLineSize_, nil
		}},
		{SourceXSys, func() (uintptr, error) {
			return unsafe.Sizeof(cpu.CacheLinePad{}), nil
		}},
		{SourcePB, pbLineSize},
		{SourceKlauspost, func() (uintptr, error) {
			if kcpuid.CPU.CacheLine <= 0 {
				return 0, errUndetectable
			}
			return uintptr(kcpuid.CPU.CacheLine), nil
		}},
		{SourceSysfs, func() (uintptr, error) {
			if opts.NoOS {
				return 0, errOSDisabled
			}
			return sysfs.L1DataLineSize(root)
		}},
	}
}

// Collect probes every source concurrently. Failing sources are recorded
// in the report; only a cancelled ctx makes Collect fail.
func Collect(ctx context.Context, opts Options) (Report, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	ps := probes(opts)
	sources := make([]Source, len(ps))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range ps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "report: probe %s", p.name)
			}
			size, err := p.fn()
			sources[i] = Source{Name: p.name, Size: size}
			if err != nil {
				sources[i].Err = err.Error()
			}
			log.WithFields(logrus.Fields{
				"source": p.name,
				"size":   size,
				"error":  err,
			}).Debug("probed cache line size")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Sources: sources}, nil
}
