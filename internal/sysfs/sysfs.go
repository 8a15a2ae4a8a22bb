// Package sysfs reads cache geometry published by the Linux kernel under
// /sys/devices/system/cpu.
package sysfs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultRoot is where sysfs is mounted.
const DefaultRoot = "/sys"

// ErrNoL1Data is returned when cpu0 exposes no level 1 data cache.
var ErrNoL1Data = errors.New("sysfs: no level 1 data cache listed for cpu0")

// L1DataLineSize returns the coherency line size of cpu0's level 1 data
// cache, the same figure glibc reports for _SC_LEVEL1_DCACHE_LINESIZE.
// A unified level 1 cache is accepted when no data cache is listed.
func L1DataLineSize(root string) (uintptr, error) {
	dir := filepath.Join(root, "devices", "system", "cpu", "cpu0", "cache")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrap(err, "sysfs: list caches")
	}

	var unified string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "index") {
			continue
		}
		index := filepath.Join(dir, e.Name())
		level, err := readString(index, "level")
		if err != nil {
			return 0, err
		}
		if level != "1" {
			continue
		}
		typ, err := readString(index, "type")
		if err != nil {
			return 0, err
		}
		switch typ {
		case "Data":
			return readSize(index)
		case "Unified":
			unified = index
		}
	}
	if unified != "" {
		return readSize(unified)
	}
	return 0, ErrNoL1Data
}

func readSize(index string) (uintptr, error) {
	s, err := readString(index, "coherency_line_size")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "sysfs: parse %s", filepath.Join(index, "coherency_line_size"))
	}
	return uintptr(n), nil
}

func readString(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", errors.Wrapf(err, "sysfs: read %s", name)
	}
	return strings.TrimSpace(string(b)), nil
}
