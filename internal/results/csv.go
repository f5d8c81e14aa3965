package results

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV exports parsed rows as CSV with the five column headers.
// Sentinel rows keep their tokens ("N/A", "99999") as cell values.
func WriteCSV(rows []Row, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columnLabels[:]); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		radial, xaxis, yaxis := row.DisplayValues()
		if err := cw.Write([]string{row.ID, row.Name, radial, xaxis, yaxis}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
