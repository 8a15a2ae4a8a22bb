package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/llxisdsh/cacheline"
)

func fakeSysfs(t *testing.T, size string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "devices", "system", "cpu", "cpu0", "cache", "index0")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, v := range map[string]string{
		"level":               "1",
		"type":                "Data",
		"coherency_line_size": size,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(v+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := cacheline.CacheLineSize
	level := logrus.GetLevel()
	t.Cleanup(func() {
		cacheline.CacheLineSize = prev
		logrus.SetLevel(level)
	})

	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_SysfsWins(t *testing.T) {
	out, err := execute(t, "--sysfs-root", fakeSysfs(t, "256"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "256" {
		t.Fatalf("out=%q", out)
	}
}

func TestRoot_JSON(t *testing.T) {
	out, err := execute(t, "--json", "--sysfs-root", fakeSysfs(t, "128"))
	if err != nil {
		t.Fatal(err)
	}
	var cfg cacheline.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if diff := cmp.Diff(cacheline.Config{CacheLineSize: 128}, cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestRoot_Report(t *testing.T) {
	out, err := execute(t, "--report", "--log-level", "error", "--sysfs-root", fakeSysfs(t, "64"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 || !strings.HasPrefix(lines[0], "SOURCE") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if !strings.HasPrefix(lines[6], "sysfs") || !strings.Contains(lines[6], "64") {
		t.Fatalf("sysfs line=%q", lines[6])
	}
}

func TestRoot_BadLogLevel(t *testing.T) {
	if _, err := execute(t, "--log-level", "loud"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRoot_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRoot_ReportNoOS(t *testing.T) {
	out, err := execute(t, "--report", "--no-os", "--log-level", "error", "--sysfs-root", fakeSysfs(t, "64"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if fields := strings.Fields(lines[6]); fields[0] != "sysfs" || fields[1] != "-" {
		t.Fatalf("sysfs line=%q, want skipped", lines[6])
	}
}
