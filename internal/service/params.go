package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"asset_maintenance/internal/models"
)

const (
	// MaxReasonLength bounds the optional note attached to a status change.
	MaxReasonLength  = 1000
	MaxTitleLength   = 200
	MaxCommentLength = 5000
	MaxBulkIDs       = 100
	DefaultPageSize  = 10
	MaxPageSize      = 100
)

// "all" in a filter means no filter.
const filterAll = "all"

// ListFilter drives the ticket listing. PageSize 0 means DefaultPageSize;
// Unpaged returns every match and ignores Page and PageSize.
type ListFilter struct {
	Search   string
	Status   string
	Category string
	Priority string
	Page     int
	PageSize int
	Unpaged  bool
}

type CreateParams struct {
	AssetTag      string
	AssetCategory string
	AssetMake     string
	AssetModel    string
	Issue         string
	Description   string
	Category      string
	Priority      string
	Technician    string
	ReportedBy    string // defaults to the caller
	ScheduledDate string
	EstimatedCost *float64
	Notes         []string
}

// UpdateParams is a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Issue         *string
	Description   *string
	Category      *string
	Priority      *string
	Technician    *string
	ScheduledDate *string
	EstimatedCost *float64
	ActualCost    *float64
}

type CommentParams struct {
	Content  string
	Internal bool
}

// BulkParams applies the same status and/or priority to many tickets.
type BulkParams struct {
	IDs      []string
	Status   string
	Priority string
	Reason   string
}

// BulkResult lists what succeeded; Failed maps record id to error text. A
// record whose status changed before its priority update failed is listed in
// Failed with a message saying so.
type BulkResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed"`
}

type TimelineFilter struct {
	Type string // empty or "all" for every type
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, filterAll)
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

// normalizeReason trims the optional status-change note and checks its length.
func normalizeReason(reason string, v *models.ValidationError) string {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > MaxReasonLength {
		v.Add("reason", "must be at most 1000 characters")
	}
	return reason
}

func (p *CreateParams) normalize() (models.Category, models.Priority, error) {
	var v models.ValidationError

	p.AssetTag = strings.TrimSpace(p.AssetTag)
	p.AssetCategory = strings.TrimSpace(p.AssetCategory)
	p.Issue = strings.TrimSpace(p.Issue)
	p.Description = strings.TrimSpace(p.Description)
	p.Technician = strings.TrimSpace(p.Technician)
	p.ReportedBy = strings.TrimSpace(p.ReportedBy)

	required := []struct{ field, value string }{
		{"assetTag", p.AssetTag},
		{"assetCategory", p.AssetCategory},
		{"issue", p.Issue},
		{"description", p.Description},
		{"category", p.Category},
		{"priority", p.Priority},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			v.Add(r.field, "is required")
		}
	}

	category, err := models.ParseCategory(p.Category)
	if err != nil && p.Category != "" {
		v.Add("category", "must be one of hardware, software, network, preventive")
	}
	priority, err := models.ParsePriority(p.Priority)
	if err != nil && p.Priority != "" {
		v.Add("priority", "must be one of low, medium, high, critical")
	}
	if p.ScheduledDate != "" && !validDate(p.ScheduledDate) {
		v.Add("scheduledDate", "must be a YYYY-MM-DD date")
	}
	if p.EstimatedCost != nil && *p.EstimatedCost < 0 {
		v.Add("estimatedCost", "must not be negative")
	}
	return category, priority, v.OrNil()
}

func (p UpdateParams) validate() error {
	var v models.ValidationError
	if p.Issue != nil && strings.TrimSpace(*p.Issue) == "" {
		v.Add("issue", "must not be empty")
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		v.Add("description", "must not be empty")
	}
	if p.Category != nil {
		if _, err := models.ParseCategory(*p.Category); err != nil {
			v.Add("category", "must be one of hardware, software, network, preventive")
		}
	}
	if p.Priority != nil {
		if _, err := models.ParsePriority(*p.Priority); err != nil {
			v.Add("priority", "must be one of low, medium, high, critical")
		}
	}
	if p.ScheduledDate != nil && *p.ScheduledDate != "" && !validDate(*p.ScheduledDate) {
		v.Add("scheduledDate", "must be a YYYY-MM-DD date")
	}
	if p.EstimatedCost != nil && *p.EstimatedCost < 0 {
		v.Add("estimatedCost", "must not be negative")
	}
	if p.ActualCost != nil && *p.ActualCost < 0 {
		v.Add("actualCost", "must not be negative")
	}
	return v.OrNil()
}
