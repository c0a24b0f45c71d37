package board

import (
	"asset_maintenance/internal/models"
)

// Column is one fixed bucket of the board.
type Column struct {
	ID    models.Status `json:"id"`
	Title string        `json:"title"`
	Color string        `json:"color"`
}

// Columns in display order. Cancelled has no column.
var Columns = [...]Column{
	{ID: models.StatusPending, Title: "Pending Triage", Color: "amber"},
	{ID: models.StatusScheduled, Title: "Scheduled", Color: "blue"},
	{ID: models.StatusInProgress, Title: "In Progress", Color: "indigo"},
	{ID: models.StatusCompleted, Title: "Recently Completed", Color: "emerald"},
}

// ColumnFor looks a column up by its id (the status string).
func ColumnFor(id string) (Column, bool) {
	for _, c := range Columns {
		if string(c.ID) == id {
			return c, true
		}
	}
	return Column{}, false
}

// OnBoard reports whether records with status s are shown in a column.
func OnBoard(s models.Status) bool {
	_, ok := ColumnFor(string(s))
	return ok
}

// ColumnView is a column with the records currently placed in it.
type ColumnView struct {
	Column
	Count   int                        `json:"count"`
	Records []models.MaintenanceRecord `json:"records"`
}

// Snapshot is the whole board. Hidden counts records whose status has no
// column so they are not silently lost from totals.
type Snapshot struct {
	Columns []ColumnView `json:"columns"`
	Total   int          `json:"total"`
	Hidden  int          `json:"hidden"`
}

// Project partitions records into the fixed columns, preserving the
// relative order of the input.
func Project(records []models.MaintenanceRecord) Snapshot {
	snap := Snapshot{
		Columns: make([]ColumnView, len(Columns)),
		Total:   len(records),
	}
	index := make(map[models.Status]int, len(Columns))
	for i, c := range Columns {
		snap.Columns[i] = ColumnView{Column: c, Records: []models.MaintenanceRecord{}}
		index[c.ID] = i
	}
	for _, r := range records {
		i, ok := index[r.Status]
		if !ok {
			snap.Hidden++
			continue
		}
		snap.Columns[i].Records = append(snap.Columns[i].Records, r)
	}
	for i := range snap.Columns {
		snap.Columns[i].Count = len(snap.Columns[i].Records)
	}
	return snap
}

// Column returns the view for status s, if s has a column.
func (s Snapshot) Column(status models.Status) (ColumnView, bool) {
	for _, c := range s.Columns {
		if c.ID == status {
			return c, true
		}
	}
	return ColumnView{}, false
}
