package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"flightline/internal/config"
	"flightline/internal/toolrun"
)

func TestCheckToolsDirectory(t *testing.T) {
	dir := t.TempDir()
	if result := CheckToolsDirectory(dir); !result.Passed {
		t.Fatalf("expected existing directory to pass: %+v", result)
	}
	if result := CheckToolsDirectory(filepath.Join(dir, "missing")); result.Passed {
		t.Fatal("expected missing directory to fail")
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if result := CheckToolsDirectory(file); result.Passed {
		t.Fatal("expected plain file to fail the directory check")
	}
}

func TestCheckToolBinary(t *testing.T) {
	dir := t.TempDir()
	if result := CheckToolBinary(dir, "lidar_flightline_overlap"); result.Passed {
		t.Fatal("expected missing binary to fail")
	}

	path := filepath.Join(dir, toolrun.ExecutableName("lidar_flightline_overlap"))
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	result := CheckToolBinary(dir, "lidar_flightline_overlap")
	if !result.Passed {
		t.Fatalf("expected installed binary to pass: %+v", result)
	}
	if result.Detail != path {
		t.Fatalf("expected resolved path %q, got %q", path, result.Detail)
	}
}

func TestCheckOutputTarget(t *testing.T) {
	dir := t.TempDir()
	if result := CheckOutputTarget(filepath.Join(dir, "out.dep")); !result.Passed {
		t.Fatalf("expected writable target to pass: %+v", result)
	}
	if result := CheckOutputTarget(filepath.Join(dir, "missing", "out.dep")); result.Passed {
		t.Fatal("expected target in missing directory to fail")
	}
}

func TestRunAllAndFirstFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ToolsDir = dir

	results := RunAll(&cfg, "lidar_flightline_overlap", filepath.Join(dir, "out.dep"))
	if len(results) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(results))
	}
	failure := FirstFailure(results)
	if failure == nil {
		t.Fatal("expected the missing tool binary to fail")
	}
	if failure.Name != "Tool lidar_flightline_overlap" {
		t.Fatalf("unexpected first failure %+v", failure)
	}

	path := filepath.Join(dir, toolrun.ExecutableName("lidar_flightline_overlap"))
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	if failure := FirstFailure(RunAll(&cfg, "lidar_flightline_overlap", filepath.Join(dir, "out.dep"))); failure != nil {
		t.Fatalf("expected all checks to pass, got %+v", failure)
	}
}
