package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository"

	"github.com/google/uuid"
)

// systemUser is recorded when a change has no authenticated author.
const systemUser = "System"

const (
	titleCreated    = "Ticket Created"
	titleComment    = "Comment Added"
	titleAssigned   = "Technician Assigned"
	titleUnassigned = "Technician Unassigned"
	titleUpdated    = "Record Updated"
)

// StatusChangeTitle is the timeline title of a status transition, e.g.
// "Pending → In Progress".
func StatusChangeTitle(from, to models.Status) string {
	return from.Title() + " → " + to.Title()
}

// MaintenanceService owns record mutations. Their timeline events come from
// the recorder and are stored in the same transaction as the change.
type MaintenanceService struct {
	repo     repository.MaintenanceRepo
	recorder *TimelineService
}

func NewMaintenanceService(repo repository.MaintenanceRepo, recorder *TimelineService) *MaintenanceService {
	return &MaintenanceService{repo: repo, recorder: recorder}
}

func userOrSystem(user string) string {
	if u := strings.TrimSpace(user); u != "" {
		return u
	}
	return systemUser
}

func (f ListFilter) query() (repository.RecordQuery, error) {
	var (
		q repository.RecordQuery
		v models.ValidationError
	)
	q.Search = strings.TrimSpace(f.Search)
	if !isAll(f.Status) {
		st, err := models.ParseStatus(f.Status)
		if err != nil {
			v.Add("status", "unknown status")
		}
		q.Status = st
	}
	if !isAll(f.Category) {
		c, err := models.ParseCategory(f.Category)
		if err != nil {
			v.Add("category", "unknown category")
		}
		q.Category = c
	}
	if !isAll(f.Priority) {
		p, err := models.ParsePriority(f.Priority)
		if err != nil {
			v.Add("priority", "unknown priority")
		}
		q.Priority = p
	}
	if f.Page < 0 {
		v.Add("page", "must not be negative")
	}
	if f.PageSize < 0 {
		v.Add("pageSize", "must not be negative")
	}
	return q, v.OrNil()
}

// List returns one page of matching tickets, newest first.
func (s *MaintenanceService) List(ctx context.Context, f ListFilter) (models.Page, error) {
	q, err := f.query()
	if err != nil {
		return models.Page{}, err
	}

	page, size := 1, 0
	if !f.Unpaged {
		page = max(f.Page, 1)
		size = f.PageSize
		if size == 0 {
			size = DefaultPageSize
		}
		size = min(size, MaxPageSize)
		q.Limit = size
		q.Offset = (page - 1) * size
	}

	records, total, err := s.repo.List(ctx, q)
	if err != nil {
		return models.Page{}, err
	}
	if records == nil {
		records = []models.MaintenanceRecord{}
	}

	out := models.Page{Records: records, Page: page, PageSize: size, TotalItems: total}
	switch {
	case total == 0:
		out.TotalPages = 0
	case size == 0:
		out.TotalPages = 1
	default:
		out.TotalPages = (total + size - 1) / size
	}
	return out, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (models.MaintenanceRecord, error) {
	rec, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	return newestFirst(rec), nil
}

// Create opens a pending ticket with exactly one creation event.
func (s *MaintenanceService) Create(ctx context.Context, p CreateParams, user string) (models.MaintenanceRecord, error) {
	category, priority, err := p.normalize()
	if err != nil {
		return models.MaintenanceRecord{}, err
	}

	now := s.recorder.now().UTC()
	reporter := p.ReportedBy
	if reporter == "" {
		reporter = userOrSystem(user)
	}
	notes := make([]string, 0, len(p.Notes))
	for _, n := range p.Notes {
		if n = strings.TrimSpace(n); n != "" {
			notes = append(notes, n)
		}
	}

	rec := models.MaintenanceRecord{
		AssetTag:      p.AssetTag,
		AssetCategory: p.AssetCategory,
		AssetMake:     strings.TrimSpace(p.AssetMake),
		AssetModel:    strings.TrimSpace(p.AssetModel),
		Issue:         p.Issue,
		Description:   p.Description,
		Category:      category,
		Status:        models.StatusPending,
		Priority:      priority,
		Technician:    p.Technician,
		ReportedBy:    reporter,
		ReportedDate:  now.Format(models.DateLayout),
		ScheduledDate: p.ScheduledDate,
		EstimatedCost: p.EstimatedCost,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created := s.recorder.newEvent(models.EventCreation, titleCreated, "Ticket created by "+reporter, user)
	rec.Timeline = []models.TimelineEvent{created}

	out, err := s.repo.Create(ctx, rec)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	s.recorder.publish(ctx, out.ID, created)
	return newestFirst(out), nil
}

// UpdateStatus moves a ticket to status. Moving to the current status is a
// no-op: the record is returned unchanged and no event is recorded.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id string, status models.Status, reason, user string) (models.MaintenanceRecord, error) {
	var v models.ValidationError
	if !status.Valid() {
		v.Add("status", "must be one of pending, scheduled, in-progress, completed, cancelled")
	}
	reason = normalizeReason(reason, &v)
	if err := v.OrNil(); err != nil {
		return models.MaintenanceRecord{}, err
	}

	var recorded []models.TimelineEvent
	rec, err := s.repo.Mutate(ctx, strings.TrimSpace(id), func(rec *models.MaintenanceRecord) ([]models.TimelineEvent, error) {
		if rec.Status == status {
			return nil, nil
		}
		ev := s.recorder.newEvent(models.EventStatusChange, StatusChangeTitle(rec.Status, status), reason, user)
		rec.Status = status
		if status == models.StatusCompleted && rec.CompletedDate == "" {
			rec.CompletedDate = ev.Timestamp.Format(models.DateLayout)
		}
		rec.UpdatedAt = ev.Timestamp
		recorded = []models.TimelineEvent{ev}
		return recorded, nil
	})
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	s.recorder.publish(ctx, rec.ID, recorded...)
	return newestFirst(rec), nil
}

// AddComment stores a comment and its timeline event together.
func (s *MaintenanceService) AddComment(ctx context.Context, id string, p CommentParams, user string) (models.TimelineEvent, error) {
	var v models.ValidationError
	content := strings.TrimSpace(p.Content)
	switch {
	case content == "":
		v.Add("content", "is required")
	case utf8.RuneCountInString(content) > MaxCommentLength:
		v.Add("content", fmt.Sprintf("must be at most %d characters", MaxCommentLength))
	}
	if err := v.OrNil(); err != nil {
		return models.TimelineEvent{}, err
	}

	id = strings.TrimSpace(id)
	ev := s.recorder.newEvent(models.EventComment, titleComment, content, user)
	c := models.Comment{
		ID:         uuid.NewString(),
		Author:     ev.User,
		Content:    content,
		Timestamp:  ev.Timestamp,
		IsInternal: p.Internal,
	}
	if err := s.repo.AddComment(ctx, id, c, ev); err != nil {
		return models.TimelineEvent{}, err
	}
	s.recorder.publish(ctx, id, ev)
	return ev, nil
}

// Update applies a partial field update. A technician change records an
// assignment event; every other change is summarized in one update event.
func (s *MaintenanceService) Update(ctx context.Context, id string, p UpdateParams, user string) (models.MaintenanceRecord, error) {
	if err := p.validate(); err != nil {
		return models.MaintenanceRecord{}, err
	}

	var recorded []models.TimelineEvent
	rec, err := s.repo.Mutate(ctx, strings.TrimSpace(id), func(rec *models.MaintenanceRecord) ([]models.TimelineEvent, error) {
		var events []models.TimelineEvent
		if p.Technician != nil {
			tech := strings.TrimSpace(*p.Technician)
			if tech != rec.Technician {
				if tech == "" {
					events = append(events, s.recorder.newEvent(models.EventAssignment, titleUnassigned, "Removed "+rec.Technician, user))
				} else {
					events = append(events, s.recorder.newEvent(models.EventAssignment, titleAssigned, "Assigned to "+tech, user))
				}
				rec.Technician = tech
			}
		}

		changed := applyFieldUpdates(rec, p)
		if len(changed) > 0 {
			events = append(events, s.recorder.newEvent(models.EventUpdate, titleUpdated, "Updated: "+strings.Join(changed, ", "), user))
		}
		if len(events) > 0 {
			rec.UpdatedAt = events[len(events)-1].Timestamp
		}
		recorded = events
		return events, nil
	})
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	s.recorder.publish(ctx, rec.ID, recorded...)
	return newestFirst(rec), nil
}

// applyFieldUpdates sets every non-nil field that differs and returns the
// changed field names in a fixed order. p must already be validated.
func applyFieldUpdates(rec *models.MaintenanceRecord, p UpdateParams) []string {
	var changed []string
	setString := func(name string, dst *string, src *string) {
		if src == nil {
			return
		}
		if v := strings.TrimSpace(*src); v != *dst {
			*dst = v
			changed = append(changed, name)
		}
	}
	setCost := func(name string, dst **float64, src *float64) {
		if src == nil || (*dst != nil && **dst == *src) {
			return
		}
		v := *src
		*dst = &v
		changed = append(changed, name)
	}

	setString("issue", &rec.Issue, p.Issue)
	setString("description", &rec.Description, p.Description)
	if p.Category != nil {
		c, _ := models.ParseCategory(*p.Category)
		if c != rec.Category {
			rec.Category = c
			changed = append(changed, "category")
		}
	}
	if p.Priority != nil {
		pr, _ := models.ParsePriority(*p.Priority)
		if pr != rec.Priority {
			rec.Priority = pr
			changed = append(changed, "priority")
		}
	}
	setString("scheduledDate", &rec.ScheduledDate, p.ScheduledDate)
	setCost("estimatedCost", &rec.EstimatedCost, p.EstimatedCost)
	setCost("actualCost", &rec.ActualCost, p.ActualCost)
	return changed
}

// AssetHistory lists every ticket raised against one asset, newest first.
func (s *MaintenanceService) AssetHistory(ctx context.Context, assetTag string) ([]models.MaintenanceRecord, error) {
	tag := strings.TrimSpace(assetTag)
	if tag == "" {
		v := models.ValidationError{}
		v.Add("assetTag", "is required")
		return nil, &v
	}
	records, _, err := s.repo.List(ctx, repository.RecordQuery{AssetTag: tag})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.MaintenanceRecord{}
	}
	return records, nil
}

// BulkUpdate applies the same change to each id independently. A failure on
// one record does not stop the others.
func (s *MaintenanceService) BulkUpdate(ctx context.Context, p BulkParams, user string) (BulkResult, error) {
	var v models.ValidationError
	ids := dedupe(p.IDs)
	switch {
	case len(ids) == 0:
		v.Add("ids", "at least one id is required")
	case len(ids) > MaxBulkIDs:
		v.Add("ids", fmt.Sprintf("at most %d ids per request", MaxBulkIDs))
	}

	var (
		status   models.Status
		priority *string
		err      error
	)
	if strings.TrimSpace(p.Status) == "" && strings.TrimSpace(p.Priority) == "" {
		v.Add("status", "status or priority is required")
	}
	if strings.TrimSpace(p.Status) != "" {
		if status, err = models.ParseStatus(p.Status); err != nil {
			v.Add("status", "unknown status")
		}
	}
	if strings.TrimSpace(p.Priority) != "" {
		if _, err = models.ParsePriority(p.Priority); err != nil {
			v.Add("priority", "unknown priority")
		}
		priority = &p.Priority
	}
	reason := normalizeReason(p.Reason, &v)
	if err := v.OrNil(); err != nil {
		return BulkResult{}, err
	}

	res := BulkResult{Updated: []string{}, Failed: map[string]string{}}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if status != "" {
			if _, err := s.UpdateStatus(ctx, id, status, reason, user); err != nil {
				res.Failed[id] = err.Error()
				continue
			}
		}
		if priority != nil {
			if _, err := s.Update(ctx, id, UpdateParams{Priority: priority}, user); err != nil {
				if status != "" {
					res.Failed[id] = fmt.Sprintf("status changed to %s; priority not updated: %v", status, err)
				} else {
					res.Failed[id] = err.Error()
				}
				continue
			}
		}
		res.Updated = append(res.Updated, id)
	}
	return res, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// newestFirst orders the timeline and comments for display. Ties keep
// insertion order.
func newestFirst(rec models.MaintenanceRecord) models.MaintenanceRecord {
	sortEventsDesc(rec.Timeline)
	sort.SliceStable(rec.Comments, func(i, j int) bool {
		return rec.Comments[i].Timestamp.After(rec.Comments[j].Timestamp)
	})
	return rec
}

func sortEventsDesc(events []models.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
