//go:build amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || loong64 || mips64 || mips64le

package report

import (
	"testing"

	"github.com/llxisdsh/pb"
)

func TestPBLineSize(t *testing.T) {
	size, err := pbLineSize()
	if err != nil || size != uintptr(pb.CacheLineSize) {
		t.Fatalf("pbLineSize()=%d, %v", size, err)
	}
}
