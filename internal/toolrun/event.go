package toolrun

// Kind identifies the classification of one tool output line.
type Kind int

const (
	// KindProgress carries a progress label and percent.
	KindProgress Kind = iota
	// KindError carries an error message reported by the tool or the parser.
	KindError
	// KindInfo carries a status line with an implicit zero percent, which
	// hosts may render as a progress-bar reset.
	KindInfo
)

// Event is one classified line from the tool's output stream. Events have
// no identity beyond their emission order.
type Event struct {
	Kind    Kind
	Message string
	Percent int
}

// Outcome is the single terminal result concluding an invocation.
type Outcome struct {
	OK         bool
	OutputPath string
	Reason     string
}

// Succeeded builds a successful outcome pointing at the requested artifact.
// The runner does not verify the artifact exists; that is the caller's
// concern.
func Succeeded(outputPath string) Outcome {
	return Outcome{OK: true, OutputPath: outputPath}
}

// Failed builds a failure outcome with a human-readable reason.
func Failed(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Sink receives classified events during an invocation and exactly one
// terminal outcome when the stream ends. Events are delivered in the order
// the tool produced them; the runner retains nothing after delivery.
type Sink interface {
	Event(Event)
	Done(Outcome)
}

// MultiSink fans every delivery out to each sink in order.
type MultiSink []Sink

// Event delivers event to every sink.
func (m MultiSink) Event(event Event) {
	for _, sink := range m {
		sink.Event(event)
	}
}

// Done delivers the terminal outcome to every sink.
func (m MultiSink) Done(outcome Outcome) {
	for _, sink := range m {
		sink.Done(outcome)
	}
}
