package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phastlab/pinpoint-mcp/internal/measure"
)

// File and folder names within a session folder.
const (
	DirName  = "Results"
	FileName = "Results_File.txt"
)

// Column labels as they appear in the file.
const (
	labelID     = "ID"
	labelName   = "Image Name"
	labelRadial = "Radial"
	labelXAxis  = "X-Axis"
	labelYAxis  = "Y-Axis"
)

// Sentinel tokens written in place of measurement values.
const (
	NoImageToken     = "N/A"
	OutOfBoundsToken = "99999"
)

// OutOfBoundsValue is the numeric form of OutOfBoundsToken seen when an
// out-of-bounds row is parsed back.
const OutOfBoundsValue = 99999

var columnLabels = [...]string{labelID, labelName, labelRadial, labelXAxis, labelYAxis}

// Trial is one record to append: the trial's position in the image set, the
// source image filename, and the measurement outcome.
type Trial struct {
	Index       int                 `json:"index"`
	Name        string              `json:"name"`
	Measurement measure.Measurement `json:"measurement"`
}

// Store appends trial records to a session's results file. It holds no open
// file handle; every call opens, writes, and closes the file, and re-checks
// folder and file existence, so Append is safe to call any number of times
// per session.
type Store struct {
	dir  string
	path string
}

// NewStore binds a store to the session folder containing the trial images.
func NewStore(sessionFolder string) *Store {
	dir := filepath.Join(sessionFolder, DirName)
	return &Store{
		dir:  dir,
		path: filepath.Join(dir, FileName),
	}
}

// Path returns the absolute path of the results file.
func (s *Store) Path() string {
	return s.path
}

// Append writes one record per trial, in input order, creating the Results
// folder and the file preamble on first use.
func (s *Store) Append(trials []Trial) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create results folder: %w", err)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.writePreamble(); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat results file: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	for _, trial := range trials {
		radial := fieldText(trial.Measurement, trial.Measurement.Radial)
		xaxis := fieldText(trial.Measurement, trial.Measurement.X)
		yaxis := fieldText(trial.Measurement, trial.Measurement.Y)
		_, err := fmt.Fprintf(f, "%s %-10d %s %-10s %s %s \t\t %s %s\t %s %s\n",
			labelID, trial.Index, labelName, trial.Name,
			labelRadial, radial, labelXAxis, xaxis, labelYAxis, yaxis)
		if err != nil {
			return fmt.Errorf("failed to write trial %d: %w", trial.Index, err)
		}
	}
	return nil
}

// writePreamble creates the file with the header and separator lines.
func (s *Store) writePreamble() error {
	var b strings.Builder
	b.WriteString("=")
	for _, label := range columnLabels {
		fmt.Fprintf(&b, "%-15s", label)
	}
	b.WriteString("\n===\n")

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	return nil
}

// TrimLastRecord removes the most recently appended record, undoing the
// last trial. The preamble lines are never removed.
func (s *Store) TrimLastRecord() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoResults
		}
		return fmt.Errorf("failed to read results file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	// Drop the empty element after the trailing newline.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= 2 {
		return fmt.Errorf("results file has no trial records to remove")
	}

	lines = lines[:len(lines)-1]
	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to rewrite results file: %w", err)
	}
	return nil
}

// fieldText renders one measurement field as written to the file.
func fieldText(m measure.Measurement, v float64) string {
	switch m.Kind {
	case measure.KindNoImage:
		return NoImageToken
	case measure.KindOutOfBounds:
		return OutOfBoundsToken
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}
