package results

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phastlab/pinpoint-mcp/internal/measure"
)

// ErrNoResults is reported when the expected results file does not exist.
// It represents an empty-data condition for the folder, not a failure.
var ErrNoResults = errors.New("no results data for this folder")

// MalformedLineError aborts a parse when a data line is missing an expected
// label or carries a non-numeric value where a number is required.
type MalformedLineError struct {
	Line  string // raw line content
	Label string // label that was missing or whose value failed to parse
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed results line (bad %q field): %q", e.Label, e.Line)
}

// Row is one parsed record. For a no-image row the numeric fields are zero
// and Kind is KindNoImage; an out-of-bounds row parses numerically (all
// three fields hold OutOfBoundsValue) but is tagged KindOutOfBounds so
// review code can mask it.
type Row struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Kind   measure.Kind `json:"kind"`
	Radial float64      `json:"radial"`
	XAxis  float64      `json:"x_axis"`
	YAxis  float64      `json:"y_axis"`
}

// DisplayValues returns the three measurement fields as the text written in
// the file: fixed two-decimal numbers, or the sentinel token.
func (r Row) DisplayValues() (radial, xaxis, yaxis string) {
	switch r.Kind {
	case measure.KindNoImage:
		return NoImageToken, NoImageToken, NoImageToken
	case measure.KindOutOfBounds:
		return OutOfBoundsToken, OutOfBoundsToken, OutOfBoundsToken
	default:
		return strconv.FormatFloat(r.Radial, 'f', 2, 64),
			strconv.FormatFloat(r.XAxis, 'f', 2, 64),
			strconv.FormatFloat(r.YAxis, 'f', 2, 64)
	}
}

// ParseFolder parses the results file under folder/Results/.
func ParseFolder(folder string) ([]Row, error) {
	return ParseFile(filepath.Join(folder, DirName, FileName))
}

// ParseFile reads a results file and returns its records in file order.
// Preamble lines (first non-space character '=') and blank lines are
// skipped. Any malformed data line aborts the parse with a
// MalformedLineError; no partial result set is returned.
func ParseFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	var rows []Row
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "=") {
			continue
		}
		row, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	return rows, nil
}

// parseLine extracts one record by locating each column label within the
// line. Values are the first whitespace-separated token after their label,
// except the image name, which spans from after "Image Name" to the last
// occurrence of "Radial" (filenames may contain spaces).
func parseLine(line string) (*Row, error) {
	id, ok := tokenAfter(line, labelID)
	if !ok {
		return nil, &MalformedLineError{Line: line, Label: labelID}
	}

	nameStart := strings.Index(line, labelName)
	radialStart := strings.LastIndex(line, labelRadial)
	if nameStart < 0 || radialStart < nameStart+len(labelName) {
		return nil, &MalformedLineError{Line: line, Label: labelName}
	}
	name := strings.TrimSpace(line[nameStart+len(labelName) : radialStart])

	radial, ok := tokenAfter(line, labelRadial)
	if !ok {
		return nil, &MalformedLineError{Line: line, Label: labelRadial}
	}
	xaxis, ok := tokenAfter(line, labelXAxis)
	if !ok {
		return nil, &MalformedLineError{Line: line, Label: labelXAxis}
	}
	yaxis, ok := tokenAfter(line, labelYAxis)
	if !ok {
		return nil, &MalformedLineError{Line: line, Label: labelYAxis}
	}

	row := &Row{ID: id, Name: name}

	if radial == NoImageToken && xaxis == NoImageToken && yaxis == NoImageToken {
		row.Kind = measure.KindNoImage
		return row, nil
	}

	values := [3]float64{}
	for i, tok := range []struct{ label, text string }{
		{labelRadial, radial},
		{labelXAxis, xaxis},
		{labelYAxis, yaxis},
	} {
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &MalformedLineError{Line: line, Label: tok.label}
		}
		values[i] = v
	}
	row.Radial, row.XAxis, row.YAxis = values[0], values[1], values[2]

	if values[0] == OutOfBoundsValue && values[1] == OutOfBoundsValue && values[2] == OutOfBoundsValue {
		row.Kind = measure.KindOutOfBounds
	} else {
		row.Kind = measure.KindMeasured
	}
	return row, nil
}

// tokenAfter returns the first whitespace-separated token following the
// first occurrence of label in line.
func tokenAfter(line, label string) (string, bool) {
	idx := strings.Index(line, label)
	if idx < 0 {
		return "", false
	}
	fields := strings.Fields(line[idx+len(label):])
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
