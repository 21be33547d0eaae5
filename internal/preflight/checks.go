// Package preflight verifies the invocation environment before any process
// spawns: tools directory access, tool binary presence, and a writable
// output target.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"flightline/internal/config"
	"flightline/internal/toolrun"
)

// Result reports one environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckToolsDirectory verifies that the tools directory exists and is
// accessible.
func CheckToolsDirectory(path string) Result {
	const name = "Tools directory"
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := accessCheck(path, accessRead|accessExec); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckToolBinary verifies that the tool binary is present in toolsDir.
func CheckToolBinary(toolsDir, tool string) Result {
	name := "Tool " + tool
	path, err := toolrun.ResolveExecutable(toolsDir, tool)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found in %s", toolrun.ExecutableName(tool), toolsDir)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is a directory", path)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckOutputTarget verifies that the output file's parent directory exists
// and is writable. The artifact itself is produced by the tool.
func CheckOutputTarget(outputPath string) Result {
	const name = "Output target"
	dir := filepath.Dir(outputPath)
	info, err := os.Stat(dir)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", dir)}
	}
	if err := accessCheck(dir, accessWrite); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: dir}
}

// RunAll performs every pre-spawn check for one invocation.
func RunAll(cfg *config.Config, tool, outputPath string) []Result {
	return []Result{
		CheckToolsDirectory(cfg.Paths.ToolsDir),
		CheckToolBinary(cfg.Paths.ToolsDir, tool),
		CheckOutputTarget(outputPath),
	}
}

// FirstFailure returns the first failed result, or nil when all passed.
func FirstFailure(results []Result) *Result {
	for i := range results {
		if !results[i].Passed {
			return &results[i]
		}
	}
	return nil
}
