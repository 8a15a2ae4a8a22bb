//go:build !(amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || loong64 || mips64 || mips64le)

package report

import "github.com/pkg/errors"

// pb does not build on 32-bit targets.
var errPBUnsupported = errors.New("pb not available on 32-bit targets")

func pbLineSize() (uintptr, error) {
	return 0, errPBUnsupported
}
