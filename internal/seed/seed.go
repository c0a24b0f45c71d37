// Package seed loads maintenance records from a YAML fixture file into an
// empty store.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository"

	"gopkg.in/yaml.v3"
)

type file struct {
	Records []record `yaml:"records"`
}

type record struct {
	ID            string    `yaml:"id"`
	AssetTag      string    `yaml:"assetTag"`
	AssetCategory string    `yaml:"assetCategory"`
	AssetMake     string    `yaml:"assetMake"`
	AssetModel    string    `yaml:"assetModel"`
	Issue         string    `yaml:"issue"`
	Description   string    `yaml:"description"`
	Category      string    `yaml:"category"`
	Status        string    `yaml:"status"`
	Priority      string    `yaml:"priority"`
	Technician    string    `yaml:"technician"`
	ReportedBy    string    `yaml:"reportedBy"`
	ReportedDate  string    `yaml:"reportedDate"`
	ScheduledDate string    `yaml:"scheduledDate"`
	CompletedDate string    `yaml:"completedDate"`
	EstimatedCost *float64  `yaml:"estimatedCost"`
	ActualCost    *float64  `yaml:"actualCost"`
	Notes         []string  `yaml:"notes"`
	Timeline      []event   `yaml:"timeline"`
	Comments      []comment `yaml:"comments"`
}

type event struct {
	Type        string    `yaml:"type"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	User        string    `yaml:"user"`
	Timestamp   time.Time `yaml:"timestamp"`
}

type comment struct {
	Author    string    `yaml:"author"`
	Content   string    `yaml:"content"`
	Internal  bool      `yaml:"internal"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Load reads and validates a fixture file.
func Load(path string) ([]models.MaintenanceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return recs, nil
}

func Parse(r io.Reader) ([]models.MaintenanceRecord, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	out := make([]models.MaintenanceRecord, 0, len(doc.Records))
	for i, raw := range doc.Records {
		rec, err := raw.toModel()
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, raw.AssetTag, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r record) toModel() (models.MaintenanceRecord, error) {
	status, err := models.ParseStatus(orDefault(r.Status, string(models.StatusPending)))
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	priority, err := models.ParsePriority(orDefault(r.Priority, string(models.PriorityMedium)))
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	if r.AssetTag == "" || r.Issue == "" {
		return models.MaintenanceRecord{}, fmt.Errorf("assetTag and issue are required")
	}
	reported, err := time.Parse(models.DateLayout, r.ReportedDate)
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("reportedDate: %w", err)
	}

	rec := models.MaintenanceRecord{
		ID:            r.ID,
		AssetTag:      r.AssetTag,
		AssetCategory: r.AssetCategory,
		AssetMake:     r.AssetMake,
		AssetModel:    r.AssetModel,
		Issue:         r.Issue,
		Description:   r.Description,
		Category:      category,
		Status:        status,
		Priority:      priority,
		Technician:    r.Technician,
		ReportedBy:    orDefault(r.ReportedBy, "system"),
		ReportedDate:  r.ReportedDate,
		ScheduledDate: r.ScheduledDate,
		CompletedDate: r.CompletedDate,
		EstimatedCost: r.EstimatedCost,
		ActualCost:    r.ActualCost,
		Notes:         r.Notes,
		CreatedAt:     reported.UTC(),
		UpdatedAt:     reported.UTC(),
	}

	created := 0
	for _, e := range r.Timeline {
		typ, err := models.ParseEventType(e.Type)
		if err != nil {
			return models.MaintenanceRecord{}, err
		}
		if typ == models.EventCreation {
			created++
		}
		ts := e.Timestamp
		if ts.IsZero() {
			ts = rec.CreatedAt
		}
		rec.Timeline = append(rec.Timeline, models.TimelineEvent{
			Type:        typ,
			Title:       e.Title,
			Description: e.Description,
			User:        orDefault(e.User, rec.ReportedBy),
			Timestamp:   ts.UTC(),
		})
		if ts.After(rec.UpdatedAt) {
			rec.UpdatedAt = ts.UTC()
		}
	}
	switch created {
	case 0:
		rec.Timeline = append([]models.TimelineEvent{{
			Type:        models.EventCreation,
			Title:       "Ticket Created",
			Description: "Ticket created by " + rec.ReportedBy,
			User:        rec.ReportedBy,
			Timestamp:   rec.CreatedAt,
		}}, rec.Timeline...)
	case 1:
	default:
		return models.MaintenanceRecord{}, fmt.Errorf("timeline of %s has %d creation events", rec.AssetTag, created)
	}
	for _, c := range r.Comments {
		ts := c.Timestamp
		if ts.IsZero() {
			ts = rec.CreatedAt
		}
		rec.Comments = append(rec.Comments, models.Comment{
			Author:     c.Author,
			Content:    c.Content,
			IsInternal: c.Internal,
			Timestamp:  ts.UTC(),
		})
	}
	return rec, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Apply inserts records when the store is empty and reports how many were
// written. A store that already holds records is left alone.
func Apply(ctx context.Context, repo repository.MaintenanceRepo, records []models.MaintenanceRecord) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, rec := range records {
		if _, err := repo.Create(ctx, rec); err != nil {
			return i, fmt.Errorf("seed record %s: %w", rec.AssetTag, err)
		}
	}
	return len(records), nil
}
