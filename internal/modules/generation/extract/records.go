package extract

import (
	"errors"
	"fmt"
	"strings"

	types "github.com/yungbote/lessongen/internal/domain"
	"github.com/yungbote/lessongen/internal/platform/logger"
)

// ErrMissingMarker means a line does not contain every marker token and is not
// a record line at all (preamble, blank line, commentary).
var ErrMissingMarker = errors.New("line does not contain every marker")

// LineParseError means a line contained every token but not in the declared
// order, so field boundaries could not be resolved.
type LineParseError struct {
	Line   int
	Marker types.Marker
}

func (e *LineParseError) Error() string {
	return fmt.Sprintf("line %d: marker %q not found after preceding marker", e.Line, e.Marker.Token())
}

// Fields maps each marker to its trimmed text.
type Fields map[types.Marker]string

// ScanLine splits one line on an ordered marker list. Each field runs from the
// end of its token to the start of the next marker's token, or to end of line.
// Marker tokens inside a field's own text move that boundary; there is no
// escaping in the line protocol.
func ScanLine(line string, markers []types.Marker) (Fields, error) {
	if len(markers) == 0 {
		return nil, ErrMissingMarker
	}
	for _, m := range markers {
		if !strings.Contains(line, m.Token()) {
			return nil, ErrMissingMarker
		}
	}

	// starts[i] is where marker i's token begins, ends[i] where its value begins.
	starts := make([]int, len(markers))
	ends := make([]int, len(markers))
	cursor := 0
	for i, m := range markers {
		tok := m.Token()
		idx := strings.Index(line[cursor:], tok)
		if idx < 0 {
			return nil, &LineParseError{Marker: m}
		}
		starts[i] = cursor + idx
		ends[i] = starts[i] + len(tok)
		cursor = ends[i]
	}

	out := make(Fields, len(markers))
	for i, m := range markers {
		stop := len(line)
		if i+1 < len(markers) {
			stop = starts[i+1]
		}
		out[m] = strings.TrimSpace(line[ends[i]:stop])
	}
	return out, nil
}

type Outcome int

const (
	LineOK Outcome = iota
	LineSkipped
)

// LineResult is the explicit per-line verdict: either a record or a skip with
// its reason.
type LineResult struct {
	Line    int
	Outcome Outcome
	Record  types.QuestionRecord
	Err     error
}

func ParseLine(line string, markers []types.Marker) LineResult {
	fields, err := ScanLine(line, markers)
	if err != nil {
		return LineResult{Outcome: LineSkipped, Err: err}
	}
	return LineResult{Outcome: LineOK, Record: toRecord(fields)}
}

// ParseLines returns one result per newline-separated line, numbered from 1.
func ParseLines(raw string, markers []types.Marker) []LineResult {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	out := make([]LineResult, 0, len(lines))
	for i, line := range lines {
		res := ParseLine(line, markers)
		res.Line = i + 1
		var pe *LineParseError
		if errors.As(res.Err, &pe) {
			pe.Line = res.Line
		}
		out = append(out, res)
	}
	return out
}

// Records keeps every parsed line in order and drops the rest. It never fails;
// an empty result is for the caller to interpret.
func Records(raw string, markers []types.Marker, log *logger.Logger) []types.QuestionRecord {
	results := ParseLines(raw, markers)
	records := make([]types.QuestionRecord, 0, len(results))
	skipped := 0
	for _, res := range results {
		if res.Outcome == LineOK {
			records = append(records, res.Record)
			continue
		}
		skipped++
		if log == nil {
			continue
		}
		var pe *LineParseError
		if errors.As(res.Err, &pe) {
			log.Warn("skipping unparseable question line", "line", res.Line, "error", res.Err)
		} else {
			log.Debug("skipping non-record line", "line", res.Line)
		}
	}
	if log != nil && skipped > 0 {
		log.Debug("question extraction finished", "records", len(records), "skipped_lines", skipped)
	}
	return records
}

func toRecord(f Fields) types.QuestionRecord {
	rec := types.QuestionRecord{
		Question:      f[types.MarkerQuestion],
		CorrectAnswer: f[types.MarkerAnswer],
		Topic:         f[types.MarkerTopic],
	}
	if opts, ok := f[types.MarkerOptions]; ok {
		rec.Options = splitOptions(opts)
	}
	return rec
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
