// Package export renders maintenance records as a CSV report.
package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"asset_maintenance/internal/models"
)

// Header is the first line of every report.
var Header = []string{
	"ID", "Asset Tag", "Category", "Issue", "Status",
	"Priority", "Technician", "Reported By",
	"Reported Date", "Completed Date", "Actual Cost",
}

const (
	unassigned = "Unassigned"
	notApplied = "N/A"
)

// Row returns the report cells for one record.
func Row(r models.MaintenanceRecord) []string {
	technician := r.Technician
	if technician == "" {
		technician = unassigned
	}
	completed := r.CompletedDate
	if completed == "" {
		completed = notApplied
	}
	cost := notApplied
	if r.ActualCost != nil {
		cost = strconv.FormatFloat(*r.ActualCost, 'f', -1, 64)
	}
	return []string{
		r.ID,
		r.AssetTag,
		string(r.Category),
		r.Issue,
		string(r.Status),
		string(r.Priority),
		technician,
		r.ReportedBy,
		r.ReportedDate,
		completed,
		cost,
	}
}

// WriteReport writes the header and one line per record. Every cell is
// wrapped in double quotes with embedded quotes doubled, cells are joined
// by commas and lines by "\n" with no trailing newline.
func WriteReport(w io.Writer, records []models.MaintenanceRecord) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, Header)
	for _, r := range records {
		bw.WriteByte('\n')
		writeLine(bw, Row(r))
	}
	return bw.Flush()
}

var quoteEscaper = strings.NewReplacer(`"`, `""`)

// bufio.Writer keeps the first write error and reports it from Flush.
func writeLine(bw *bufio.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteByte('"')
		quoteEscaper.WriteString(bw, c)
		bw.WriteByte('"')
	}
}
