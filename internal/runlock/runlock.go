// Package runlock guards output artifact paths so concurrent invocations
// cannot write the same file.
package runlock

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// Lock holds an exclusive file lock next to one output artifact.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes a non-blocking exclusive lock on <outputPath>.lock. It fails
// when another invocation already owns the output.
func Acquire(outputPath string) (*Lock, error) {
	lockPath := outputPath + ".lock"
	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("output %s is already being written by another invocation", outputPath)
	}
	return &Lock{fl: fl, path: lockPath}, nil
}

// Release drops the lock and removes the lock file on a best-effort basis.
func (l *Lock) Release() {
	if l == nil || l.fl == nil {
		return
	}
	_ = l.fl.Unlock()
	_ = os.Remove(l.path)
}
