//go:build amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || loong64 || mips64 || mips64le

package report

import "github.com/llxisdsh/pb"

func pbLineSize() (uintptr, error) {
	return uintptr(pb.CacheLineSize), nil
}
