//go:build windows

package preflight

type accessMode uint32

const (
	accessRead accessMode = 1 << iota
	accessWrite
	accessExec
)

// Windows has no faccessat equivalent worth emulating here; the later
// process spawn reports permission problems directly.
func accessCheck(string, accessMode) error {
	return nil
}
