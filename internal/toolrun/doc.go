// Package toolrun launches external geoprocessing tools and relays their
// line-oriented progress protocol to event sinks.
//
// The tools communicate solely through plain text on their combined
// stdout/stderr stream and their exit code. Each output line is classified
// into a progress, error, or info event (or suppressed as noise) and
// forwarded in emission order; a single terminal outcome concludes every
// invocation.
package toolrun
