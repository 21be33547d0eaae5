package toolrun

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// BuildArgs assembles the tool command line from a validated request.
// Argument order is fixed: input, output, resolution, palette, verbosity.
func BuildArgs(req Request) []string {
	args := []string{
		"-i=" + req.InputPath,
		"-o=" + req.OutputPath,
		"-resolution=" + strconv.FormatFloat(req.Resolution, 'f', -1, 64),
		"-palette=" + req.Palette,
	}
	if req.Verbose {
		args = append(args, "-v")
	}
	return args
}

// ExecutableName appends the platform executable suffix to a tool name.
func ExecutableName(tool string) string {
	if runtime.GOOS == "windows" {
		return tool + ".exe"
	}
	return tool
}

// ResolveExecutable returns the absolute path of the tool binary inside
// toolsDir. The path is always absolute so concurrent invocations never
// depend on the process-wide working directory.
func ResolveExecutable(toolsDir, tool string) (string, error) {
	path := filepath.Join(toolsDir, ExecutableName(tool))
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve tool path %q: %w", path, err)
	}
	return absolute, nil
}
