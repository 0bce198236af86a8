package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"index", "exact_x", "exact_y", "exact_r", "approx_x", "approx_y"}

// CSVRenderer writes one row per sample index with both curves side by side.
// When the resolutions differ the shorter curve leaves its cells empty.
type CSVRenderer struct {
	W io.Writer
}

// Render writes the header and all rows
func (r CSVRenderer) Render(s Scene) error {
	w := csv.NewWriter(r.W)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	rows := s.Exact.Len()
	if s.Approx.Len() > rows {
		rows = s.Approx.Len()
	}
	record := make([]string, len(csvHeader))
	for i := 0; i < rows; i++ {
		record[0] = strconv.Itoa(i)
		record[1], record[2], record[3] = cell(s.Exact.X, i), cell(s.Exact.Y, i), cell(s.Exact.R, i)
		record[4], record[5] = cell(s.Approx.X, i), cell(s.Approx.Y, i)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func cell(v []float64, i int) string {
	if i >= len(v) {
		return ""
	}
	return strconv.FormatFloat(v[i], 'g', -1, 64)
}
