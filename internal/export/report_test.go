package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"asset_maintenance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cost(v float64) *float64 { return &v }

func TestWriteReport(t *testing.T) {
	t.Parallel()

	records := []models.MaintenanceRecord{
		{
			ID: "MNT-001", AssetTag: "LAP-0042", Category: models.CategoryHardware,
			Issue: `Screen says "no signal", flickers`, Status: models.StatusCompleted,
			Priority: models.PriorityHigh, Technician: "Sam Ortiz", ReportedBy: "jdoe",
			ReportedDate: "2024-03-01", CompletedDate: "2024-03-04", ActualCost: cost(129.5),
		},
		{
			ID: "MNT-002", AssetTag: "SRV-0100", Category: models.CategoryNetwork,
			Issue: "Uplink down", Status: models.StatusPending, Priority: models.PriorityCritical,
			ReportedBy: "ops", ReportedDate: "2024-03-02",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, records))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `"ID","Asset Tag","Category","Issue"`))
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, `"Screen says ""no signal"", flickers"`)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{
		"MNT-001", "LAP-0042", "hardware", `Screen says "no signal", flickers`, "completed",
		"high", "Sam Ortiz", "jdoe", "2024-03-01", "2024-03-04", "129.5",
	}, rows[1])
	assert.Equal(t, "Unassigned", rows[2][6])
	assert.Equal(t, "N/A", rows[2][9])
	assert.Equal(t, "N/A", rows[2][10])
}

func TestWriteReport_HeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Equal(t, len(Header), strings.Count(buf.String(), `","`)+1)
	assert.NotContains(t, buf.String(), "\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteReport_WriteError(t *testing.T) {
	t.Parallel()

	assert.Error(t, WriteReport(failingWriter{}, []models.MaintenanceRecord{{ID: "MNT-001"}}))
}
