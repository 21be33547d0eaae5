// Package tools describes the catalog of known geoprocessing tool binaries
// and reports their availability in the configured tools directory.
package tools
