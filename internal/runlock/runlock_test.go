package runlock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAcquireIsExclusive(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.dep")

	first, err := Acquire(output)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	defer first.Release()

	if _, err := Acquire(output); err == nil {
		t.Fatal("expected second acquire to fail while lock is held")
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.dep")

	lock, err := Acquire(output)
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	lock.Release()

	if _, err := os.Stat(output + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("expected lock file to be removed, stat err: %v", err)
	}

	again, err := Acquire(output)
	if err != nil {
		t.Fatalf("expected reacquire to succeed: %v", err)
	}
	again.Release()
}

func TestReleaseNil(t *testing.T) {
	var lock *Lock
	lock.Release()
}
