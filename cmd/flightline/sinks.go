package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"flightline/internal/logging"
	"flightline/internal/toolrun"
)

// consoleSink renders tool events for an interactive user. On a TTY,
// progress updates redraw a single line in place; elsewhere they are
// sampled so piped output stays readable.
type consoleSink struct {
	out     io.Writer
	errOut  io.Writer
	tty     bool
	sampler *logging.ProgressSampler
	dirty   bool
	done    bool
}

func newConsoleSink(out, errOut io.Writer) *consoleSink {
	tty := false
	if file, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &consoleSink{
		out:     out,
		errOut:  errOut,
		tty:     tty,
		sampler: logging.NewProgressSampler(5),
	}
}

func (s *consoleSink) Event(event toolrun.Event) {
	// The post-outcome progress reset is for host progress bars; a console
	// has nothing to reset.
	if s.done {
		return
	}
	switch event.Kind {
	case toolrun.KindProgress:
		if s.tty {
			fmt.Fprintf(s.out, "\r\033[2K%s %3d%%", event.Message, event.Percent)
			s.dirty = true
			return
		}
		if s.sampler.ShouldLog(event.Percent, event.Message) {
			fmt.Fprintf(s.out, "%s %d%%\n", event.Message, event.Percent)
		}
	case toolrun.KindError:
		s.clearLine()
		fmt.Fprintf(s.errOut, "error: %s\n", event.Message)
	case toolrun.KindInfo:
		s.clearLine()
		fmt.Fprintln(s.out, event.Message)
	}
}

func (s *consoleSink) Done(outcome toolrun.Outcome) {
	s.clearLine()
	s.done = true
	if outcome.OK {
		fmt.Fprintf(s.out, "Output written to %s\n", outcome.OutputPath)
	}
	// Failure reasons surface through the command's error return.
}

func (s *consoleSink) clearLine() {
	if s.dirty {
		fmt.Fprint(s.out, "\r\033[2K")
		s.dirty = false
	}
}

// logSink mirrors the event stream into the structured log, with progress
// sampled so long runs do not flood the log file.
type logSink struct {
	logger  *slog.Logger
	sampler *logging.ProgressSampler
}

func newLogSink(logger *slog.Logger) *logSink {
	return &logSink{logger: logger, sampler: logging.NewProgressSampler(5)}
}

func (s *logSink) Event(event toolrun.Event) {
	switch event.Kind {
	case toolrun.KindProgress:
		if s.sampler.ShouldLog(event.Percent, event.Message) {
			s.logger.Info("tool progress", "label", event.Message, "percent", event.Percent)
		}
	case toolrun.KindError:
		s.logger.Error("tool error", "message", event.Message)
	case toolrun.KindInfo:
		s.logger.Info("tool output", "message", event.Message)
	}
}

func (s *logSink) Done(outcome toolrun.Outcome) {
	if outcome.OK {
		s.logger.Info("invocation complete", "output", outcome.OutputPath)
		return
	}
	s.logger.Error("invocation failed", "reason", outcome.Reason)
}
