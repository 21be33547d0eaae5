// Package history persists one record per tool invocation in SQLite so
// operators can audit what ran, with which parameters, and how it ended.
package history
