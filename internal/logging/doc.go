// Package logging constructs the application slog.Logger and provides the
// progress sampler that keeps tool progress from flooding the logs.
package logging
