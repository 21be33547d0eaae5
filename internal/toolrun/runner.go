package toolrun

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// progressResetLabel is issued after every invocation so host progress bars
// return to an idle state regardless of how the run ended.
const progressResetLabel = "Progress"

var commandContext = exec.CommandContext

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout bounds the child process lifetime. Zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// Runner launches one external tool process and streams its combined
// stdout/stderr through the progress-line parser. A Runner serves a single
// invocation; create a new one per run.
type Runner struct {
	exePath string
	workDir string
	timeout time.Duration
}

// NewRunner constructs a runner for the tool binary at exePath. The child
// runs with workDir as its working directory, typically the tools
// installation directory.
func NewRunner(exePath, workDir string, opts ...Option) (*Runner, error) {
	if strings.TrimSpace(exePath) == "" {
		return nil, errors.New("tool executable path required")
	}
	runner := &Runner{exePath: exePath, workDir: workDir}
	for _, opt := range opts {
		opt(runner)
	}
	return runner, nil
}

// RunArgs validates raw dialog parameters and runs the tool. A validation
// failure never spawns a process but still delivers a terminal outcome and
// the final progress reset through sink.
func (r *Runner) RunArgs(ctx context.Context, raw []string, sink Sink) Outcome {
	req, err := NewRequest(raw)
	if err != nil {
		return r.finish(sink, Failed(err.Error()))
	}
	return r.Run(ctx, req, sink)
}

// Run executes the tool for req, delivering events to sink in the order the
// child produced them, followed by exactly one terminal outcome and the
// progress reset. It blocks until the child exits; callers that must stay
// responsive run it in its own goroutine. Cancelling ctx kills the child and
// yields a "cancelled" failure.
func (r *Runner) Run(ctx context.Context, req Request, sink Sink) Outcome {
	return r.finish(sink, r.stream(ctx, req, sink))
}

func (r *Runner) finish(sink Sink, outcome Outcome) Outcome {
	sink.Done(outcome)
	sink.Event(Event{Kind: KindProgress, Message: progressResetLabel})
	return outcome
}

func (r *Runner) stream(ctx context.Context, req Request, sink Sink) Outcome {
	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := commandContext(runCtx, r.exePath, BuildArgs(req)...) //nolint:gosec
	cmd.Dir = r.workDir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Failed(fmt.Sprintf("stdout pipe: %v", err))
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return Failed(fmt.Sprintf("launch %s: %v", r.exePath, err))
	}

	// One buffered line at a time so progress reaches the sink promptly.
	var lastError string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		event, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		if event.Kind == KindError {
			lastError = event.Message
		}
		sink.Event(event)
	}
	if err := scanner.Err(); err != nil {
		lastError = fmt.Sprintf("read tool output: %v", err)
		sink.Event(Event{Kind: KindError, Message: lastError})
	}

	waitErr := cmd.Wait()
	if waitErr == nil {
		return Succeeded(req.OutputPath)
	}
	switch {
	case r.timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		return Failed(fmt.Sprintf("timed out after %s", r.timeout))
	case ctx.Err() != nil:
		return Failed("cancelled")
	case lastError != "":
		return Failed(lastError)
	default:
		return Failed(waitErr.Error())
	}
}
