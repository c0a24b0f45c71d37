package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

const csvContentType = "text/csv; charset=utf-8"

// listQuery is shared by the listing and the CSV export.
type listQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status" example:"all"`
	Category string `form:"category"`
	Priority string `form:"priority"`
	Page     int    `form:"page" binding:"gte=0"`
	PageSize int    `form:"page_size" binding:"gte=0,lte=100"`
}

func (q listQuery) filter() service.ListFilter {
	return service.ListFilter{
		Search:   q.Search,
		Status:   q.Status,
		Category: q.Category,
		Priority: q.Priority,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

// CreateMaintenanceRequest is the body of a new maintenance request.
type CreateMaintenanceRequest struct {
	AssetTag      string   `json:"assetTag" binding:"required,max=64" example:"LAP-0042"`
	AssetCategory string   `json:"assetCategory" binding:"required,max=64" example:"Laptop"`
	AssetMake     string   `json:"assetMake" binding:"max=64" example:"Dell"`
	AssetModel    string   `json:"assetModel" binding:"max=64" example:"Latitude 7440"`
	Issue         string   `json:"issue" binding:"required,max=200" example:"Screen flickers"`
	Description   string   `json:"description" binding:"required,max=5000"`
	Category      string   `json:"category" binding:"required,oneof=hardware software network preventive" example:"hardware"`
	Priority      string   `json:"priority" binding:"required,oneof=low medium high critical" example:"medium"`
	Technician    string   `json:"technician" binding:"max=128"`
	ReportedBy    string   `json:"reportedBy" binding:"max=128"`
	ScheduledDate string   `json:"scheduledDate" binding:"omitempty,datetime=2006-01-02" example:"2024-03-04"`
	EstimatedCost *float64 `json:"estimatedCost" binding:"omitempty,gte=0" example:"150"`
	Notes         []string `json:"notes" binding:"max=50"`
}

// UpdateMaintenanceRequest is a partial update; omitted fields stay unchanged.
type UpdateMaintenanceRequest struct {
	Issue         *string  `json:"issue" binding:"omitempty,max=200"`
	Description   *string  `json:"description" binding:"omitempty,max=5000"`
	Category      *string  `json:"category" binding:"omitempty,oneof=hardware software network preventive"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Technician    *string  `json:"technician" binding:"omitempty,max=128"`
	ScheduledDate *string  `json:"scheduledDate" binding:"omitempty,datetime=2006-01-02"`
	EstimatedCost *float64 `json:"estimatedCost" binding:"omitempty,gte=0"`
	ActualCost    *float64 `json:"actualCost" binding:"omitempty,gte=0"`
}

// StatusRequest changes the status from the detail view.
type StatusRequest struct {
	Status string `json:"status" binding:"required" example:"in-progress"`
	Reason string `json:"reason" binding:"max=1000" example:"Parts arrived"`
}

type CommentRequest struct {
	Content    string `json:"content" binding:"required,max=5000" example:"Ordered a replacement panel"`
	IsInternal bool   `json:"isInternal"`
}

// TimelineEntryRequest is a manual timeline entry, e.g. "Warranty checked".
// Only update entries can be recorded this way.
type TimelineEntryRequest struct {
	Type        string `json:"type" example:"update"`
	Title       string `json:"title" binding:"required,max=200" example:"Warranty checked"`
	Description string `json:"description" binding:"max=5000" example:"Covered until 2026"`
}

// BulkRequest applies one status and/or priority to many tickets.
type BulkRequest struct {
	IDs      []string `json:"ids" binding:"required,min=1,max=100,dive,required"`
	Status   string   `json:"status" example:"scheduled"`
	Priority string   `json:"priority" example:"high"`
	Reason   string   `json:"reason" binding:"max=1000"`
}

// @Summary      List maintenance records
// @Description  Newest first. status, category and priority accept "all". page_size defaults to 10.
// @Tags         maintenance
// @Produce      json
// @Param        search     query  string  false  "Matches asset tag, issue or technician"
// @Param        status     query  string  false  "Status filter"  Enums(all,pending,scheduled,in-progress,completed,cancelled)
// @Param        category   query  string  false  "Category filter"
// @Param        priority   query  string  false  "Priority filter"
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (max 100)"
// @Success      200  {object}  models.Page
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/maintenance [get]
// @Security     BearerAuth
func (h *Handler) listMaintenance(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "maintenance_list_bad_query", err)
		return
	}
	page, err := h.services.Maintenance.List(c.Request.Context(), q.filter())
	if err != nil {
		h.respondError(c, "maintenance_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary      Create maintenance request
// @Description  Opens a pending ticket with one creation event.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body      CreateMaintenanceRequest  true  "Request"
// @Success      201   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/maintenance [post]
// @Security     BearerAuth
func (h *Handler) createMaintenance(c *gin.Context) {
	var req CreateMaintenanceRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "maintenance_create_bad_body"); !ok {
		return
	}
	rec, err := h.services.Maintenance.Create(c.Request.Context(), service.CreateParams{
		AssetTag:      req.AssetTag,
		AssetCategory: req.AssetCategory,
		AssetMake:     req.AssetMake,
		AssetModel:    req.AssetModel,
		Issue:         req.Issue,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Technician:    req.Technician,
		ReportedBy:    req.ReportedBy,
		ScheduledDate: req.ScheduledDate,
		EstimatedCost: req.EstimatedCost,
		Notes:         req.Notes,
	}, currentUser(c))
	if err != nil {
		h.respondError(c, "maintenance_create_failed", err, "asset_tag", req.AssetTag)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// @Summary      Export maintenance report
// @Description  CSV with every matching record; every cell is quoted.
// @Tags         maintenance
// @Produce      text/csv
// @Param        search    query  string  false  "Matches asset tag, issue or technician"
// @Param        status    query  string  false  "Status filter"
// @Param        category  query  string  false  "Category filter"
// @Param        priority  query  string  false  "Priority filter"
// @Success      200  {string}  string  "CSV report"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/maintenance/export [get]
// @Security     BearerAuth
func (h *Handler) exportMaintenance(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "maintenance_export_bad_query", err)
		return
	}
	var buf bytes.Buffer
	if err := h.services.Export.Report(c.Request.Context(), q.filter(), &buf); err != nil {
		h.respondError(c, "maintenance_export_failed", err)
		return
	}
	name := fmt.Sprintf("maintenance-report-%s.csv", time.Now().UTC().Format(models.DateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

// @Summary      Bulk update
// @Description  Applies status and/or priority to each id independently; failures are reported per id.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body      BulkRequest  true  "Bulk change"
// @Success      200   {object}  service.BulkResult
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/maintenance/bulk [post]
// @Security     BearerAuth
func (h *Handler) bulkUpdate(c *gin.Context) {
	var req BulkRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "maintenance_bulk_bad_body"); !ok {
		return
	}
	res, err := h.services.Maintenance.BulkUpdate(c.Request.Context(), service.BulkParams{
		IDs:      req.IDs,
		Status:   req.Status,
		Priority: req.Priority,
		Reason:   req.Reason,
	}, currentUser(c))
	if err != nil {
		h.respondError(c, "maintenance_bulk_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Get maintenance record
// @Description  Includes the timeline and comments, newest first.
// @Tags         maintenance
// @Produce      json
// @Param        id   path      string  true  "Record id"  example(MNT-001)
// @Success      200  {object}  models.MaintenanceRecord
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/maintenance/{id} [get]
// @Security     BearerAuth
func (h *Handler) getMaintenance(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.services.Maintenance.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "maintenance_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Update maintenance record
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Record id"
// @Param        body  body      UpdateMaintenanceRequest  true  "Changed fields"
// @Success      200   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateMaintenance(c *gin.Context) {
	var req UpdateMaintenanceRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "maintenance_update_bad_body"); !ok {
		return
	}
	id := c.Param("id")
	rec, err := h.services.Maintenance.Update(c.Request.Context(), id, service.UpdateParams{
		Issue:         req.Issue,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Technician:    req.Technician,
		ScheduledDate: req.ScheduledDate,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
	}, currentUser(c))
	if err != nil {
		h.respondError(c, "maintenance_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Change status
// @Description  Moving to the current status is a no-op and records nothing.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Record id"
// @Param        body  body      StatusRequest  true  "New status and optional reason"
// @Success      200   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance/{id}/status [post]
// @Security     BearerAuth
func (h *Handler) updateStatus(c *gin.Context) {
	var req StatusRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "maintenance_status_bad_body"); !ok {
		return
	}
	id := c.Param("id")
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		h.respondError(c, "maintenance_status_failed", fieldError("status", "unknown status"), "id", id)
		return
	}
	rec, err := h.services.Maintenance.UpdateStatus(c.Request.Context(), id, status, req.Reason, currentUser(c))
	if err != nil {
		h.respondError(c, "maintenance_status_failed", err, "id", id, "status", status)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Add comment
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Record id"
// @Param        body  body      CommentRequest  true  "Comment"
// @Success      201   {object}  models.TimelineEvent
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance/{id}/comments [post]
// @Security     BearerAuth
func (h *Handler) addComment(c *gin.Context) {
	var req CommentRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "maintenance_comment_bad_body"); !ok {
		return
	}
	id := c.Param("id")
	ev, err := h.services.Maintenance.AddComment(c.Request.Context(), id, service.CommentParams{
		Content:  req.Content,
		Internal: req.IsInternal,
	}, currentUser(c))
	if err != nil {
		h.respondError(c, "maintenance_comment_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// @Summary      Get timeline
// @Tags         maintenance
// @Produce      json
// @Param        id    path   string  true   "Record id"
// @Param        type  query  string  false  "Event type"  Enums(all,status_change,comment,assignment,creation,update)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance/{id}/timeline [get]
// @Security     BearerAuth
func (h *Handler) getTimeline(c *gin.Context) {
	id := c.Param("id")
	events, err := h.services.Timeline.Events(c.Request.Context(), id, service.TimelineFilter{Type: c.Query("type")})
	if err != nil {
		h.respondError(c, "timeline_list_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}

// @Summary      Record timeline entry
// @Description  Appends a manual update entry. Status, comment and assignment events come from their own endpoints.
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Record id"
// @Param        body  body      TimelineEntryRequest  true  "Entry"
// @Success      201   {object}  models.TimelineEvent
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/maintenance/{id}/timeline [post]
// @Security     BearerAuth
func (h *Handler) recordTimelineEntry(c *gin.Context) {
	var req TimelineEntryRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "timeline_entry_bad_body"); !ok {
		return
	}
	id := c.Param("id")
	ev, err := h.services.Timeline.Record(c.Request.Context(), id, models.TimelineEvent{
		Type:        models.EventType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		User:        currentUser(c),
	})
	if err != nil {
		h.respondError(c, "timeline_entry_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// @Summary      Asset maintenance history
// @Tags         maintenance
// @Produce      json
// @Param        tag  path      string  true  "Asset tag"  example(LAP-0042)
// @Success      200  {object}  map[string]interface{}  "count, records"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/assets/{tag}/maintenance [get]
// @Security     BearerAuth
func (h *Handler) assetHistory(c *gin.Context) {
	tag := c.Param("tag")
	records, err := h.services.Maintenance.AssetHistory(c.Request.Context(), tag)
	if err != nil {
		h.respondError(c, "asset_history_failed", err, "asset_tag", tag)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(records), "records": records})
}
