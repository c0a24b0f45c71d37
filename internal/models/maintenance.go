package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a maintenance ticket. It drives board column placement.
type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// AllStatuses lists every status in workflow order.
var AllStatuses = [...]Status{
	StatusPending,
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the upper-case form shown in confirmation dialogs, e.g. "IN PROGRESS".
func (s Status) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "-", " "))
}

// Title is the human form used in timeline titles, e.g. "In Progress".
func (s Status) Title() string {
	words := strings.Split(string(s), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseStatus normalizes s (trim, lower case, '_' and ' ' to '-') and validates it.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	st := Status(norm)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Priority is the urgency of a ticket.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var AllPriorities = [...]Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool {
	for _, known := range AllPriorities {
		if p == known {
			return true
		}
	}
	return false
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Category segments tickets by the kind of work.
type Category string

const (
	CategoryHardware   Category = "hardware"
	CategorySoftware   Category = "software"
	CategoryNetwork    Category = "network"
	CategoryPreventive Category = "preventive"
)

var AllCategories = [...]Category{CategoryHardware, CategorySoftware, CategoryNetwork, CategoryPreventive}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// RecordIDPrefix starts every record id, e.g. "MNT-007".
const RecordIDPrefix = "MNT-"

// RecordID formats the n-th record id, zero padded to three digits.
func RecordID(n int) string {
	return fmt.Sprintf("%s%03d", RecordIDPrefix, n)
}

// DateLayout is the format of reported/scheduled/completed dates.
const DateLayout = "2006-01-02"

// MaintenanceRecord is one reported issue against an asset.
type MaintenanceRecord struct {
	ID            string          `json:"id"`
	AssetTag      string          `json:"assetTag"`
	AssetCategory string          `json:"assetCategory"`
	AssetMake     string          `json:"assetMake,omitempty"`
	AssetModel    string          `json:"assetModel,omitempty"`
	Issue         string          `json:"issue"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Status        Status          `json:"status"`
	Priority      Priority        `json:"priority"`
	Technician    string          `json:"technician,omitempty"`
	ReportedBy    string          `json:"reportedBy"`
	ReportedDate  string          `json:"reportedDate"`
	ScheduledDate string          `json:"scheduledDate,omitempty"`
	CompletedDate string          `json:"completedDate,omitempty"`
	EstimatedCost *float64        `json:"estimatedCost,omitempty"`
	ActualCost    *float64        `json:"actualCost,omitempty"`
	Notes         []string        `json:"notes"`
	Timeline      []TimelineEvent `json:"timeline,omitempty"`
	Comments      []Comment       `json:"comments,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Clone returns a deep copy so callers never share slices or pointers with the store.
func (r MaintenanceRecord) Clone() MaintenanceRecord {
	out := r
	if r.EstimatedCost != nil {
		v := *r.EstimatedCost
		out.EstimatedCost = &v
	}
	if r.ActualCost != nil {
		v := *r.ActualCost
		out.ActualCost = &v
	}
	out.Notes = append([]string(nil), r.Notes...)
	out.Timeline = append([]TimelineEvent(nil), r.Timeline...)
	out.Comments = append([]Comment(nil), r.Comments...)
	return out
}

// Page is one page of a filtered listing.
type Page struct {
	Records    []MaintenanceRecord `json:"data"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalItems int                 `json:"totalItems"`
	TotalPages int                 `json:"totalPages"`
}
