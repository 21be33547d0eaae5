package toolrun

import (
	"strconv"
	"strings"
)

// ParseLine classifies one line of tool output. Classification is stateless;
// each line is independent of prior lines.
//
// The tool protocol is an ad hoc text format, so unrecognized shapes degrade
// to Info instead of aborting a long-running job. The one escalation is a
// percent line whose trailing token fails to parse: showing a garbled
// percentage silently would be worse than surfacing the line as an error.
// The second return is false when the line is noise to suppress.
func ParseLine(line string) (Event, bool) {
	if strings.Contains(line, "%") {
		fields := strings.Fields(line)
		last := fields[len(fields)-1]
		token := strings.TrimSpace(strings.ReplaceAll(last, "%", ""))
		percent, err := strconv.Atoi(token)
		if err != nil {
			return Event{Kind: KindError, Message: line}, true
		}
		label := strings.TrimSpace(strings.TrimSuffix(strings.TrimRight(line, " \t"), last))
		return Event{Kind: KindProgress, Message: label, Percent: percent}, true
	}
	if strings.Contains(strings.ToLower(line), "error") {
		return Event{Kind: KindError, Message: line}, true
	}
	if strings.HasPrefix(line, "*") {
		return Event{}, false
	}
	return Event{Kind: KindInfo, Message: line}, true
}
