package tools

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"flightline/internal/toolrun"
)

// Tool describes one known external tool binary.
type Tool struct {
	Name        string
	Description string
}

// Catalog returns the known tools, in display order.
func Catalog() []Tool {
	return []Tool{
		{
			Name:        "lidar_flightline_overlap",
			Description: "Maps the extent of overlapping flightlines in a LiDAR point cloud",
		},
		{
			Name:        "k_means_clustering",
			Description: "Performs k-means clustering on a multi-spectral image stack",
		},
		{
			Name:        "opening",
			Description: "Applies a morphological opening filter to a raster image",
		},
	}
}

// Lookup finds a catalog entry by tool name.
func Lookup(name string) (Tool, bool) {
	for _, tool := range Catalog() {
		if tool.Name == name {
			return tool, true
		}
	}
	return Tool{}, false
}

// DisplayName renders a tool name for humans, e.g.
// "lidar_flightline_overlap" becomes "Lidar Flightline Overlap".
func DisplayName(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

// Status reports the availability of one tool binary.
type Status struct {
	Name      string
	Path      string
	Available bool
	Detail    string
}

// CheckBinaries evaluates each catalog entry against toolsDir.
func CheckBinaries(toolsDir string, catalog []Tool) []Status {
	results := make([]Status, 0, len(catalog))
	for _, tool := range catalog {
		status := Status{Name: tool.Name}
		path, err := toolrun.ResolveExecutable(toolsDir, tool.Name)
		if err != nil {
			status.Detail = err.Error()
			results = append(results, status)
			continue
		}
		status.Path = path
		info, err := os.Stat(path)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", toolrun.ExecutableName(tool.Name))
			results = append(results, status)
			continue
		}
		if info.IsDir() {
			status.Detail = fmt.Sprintf("%s is a directory", path)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
