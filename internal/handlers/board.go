package handlers

import (
	"errors"
	"io"
	"net/http"

	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// DropRequest reports where a dragged ticket was released.
type DropRequest struct {
	// Dragged ticket id.
	RecordID string `json:"recordId" binding:"required" example:"MNT-004"`
	// Column id (a status) or the id of another ticket.
	OverID string `json:"overId" example:"in-progress"`
	// Pointer travel in pixels; below 5 the gesture is a click.
	Travel float64 `json:"travel" binding:"gte=0" example:"42"`
}

// ConfirmRequest carries the optional reason recorded with the status change.
type ConfirmRequest struct {
	Reason string `json:"reason" binding:"max=1000" example:"Vendor visit booked"`
}

// @Summary      Board projection
// @Tags         board
// @Produce      json
// @Param        search  query     string  false  "Narrow the board by asset tag, issue or technician"
// @Success      200     {object}  board.Snapshot
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/board [get]
// @Security     BearerAuth
func (h *Handler) getBoard(c *gin.Context) {
	snap, err := h.services.Board.Snapshot(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, "board_snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Presentation legend
// @Description  Label, color and icon for every status, priority and event type.
// @Tags         board
// @Produce      json
// @Success      200  {object}  board.Legend
// @Router       /api/v1/board/legend [get]
// @Security     BearerAuth
func (h *Handler) getLegend(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Board.Legend())
}

// @Summary      Drop a ticket
// @Description  Resolves a drag. Returns action open_detail, noop, or confirm with the pending transition.
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        body  body      DropRequest  true  "Drag end"
// @Success      200   {object}  service.DropOutcome
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/board/drop [post]
// @Security     BearerAuth
func (h *Handler) dropOnBoard(c *gin.Context) {
	var req DropRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "board_drop_bad_body"); !ok {
		return
	}
	user := currentUser(c)
	out, err := h.services.Transition.Propose(c.Request.Context(), user, service.DropParams{
		RecordID: req.RecordID,
		OverID:   req.OverID,
		Travel:   req.Travel,
	})
	if err != nil {
		h.respondError(c, "board_drop_failed", err, "user", user, "record_id", req.RecordID)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Current pending transition
// @Tags         board
// @Produce      json
// @Success      200  {object}  service.Pending
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/board/transition [get]
// @Security     BearerAuth
func (h *Handler) currentTransition(c *gin.Context) {
	p, ok := h.services.Transition.Current(currentUser(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNoPendingTransition.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Confirm pending transition
// @Description  On failure the transition stays open for retry or cancel.
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        id    path      string          true   "Pending transition id"
// @Param        body  body      ConfirmRequest  false  "Optional reason"
// @Success      200   {object}  models.MaintenanceRecord
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/board/transition/{id}/confirm [post]
// @Security     BearerAuth
func (h *Handler) confirmTransition(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(c, "board_confirm_bad_body", err)
		return
	}
	user, id := currentUser(c), c.Param("id")
	rec, err := h.services.Transition.Confirm(c.Request.Context(), user, id, req.Reason)
	if err != nil {
		h.respondError(c, "board_confirm_failed", err, "user", user, "pending_id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Cancel pending transition
// @Tags         board
// @Produce      json
// @Param        id   path  string  true  "Pending transition id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/board/transition/{id} [delete]
// @Security     BearerAuth
func (h *Handler) cancelTransition(c *gin.Context) {
	user, id := currentUser(c), c.Param("id")
	if err := h.services.Transition.Cancel(user, id); err != nil {
		h.respondError(c, "board_cancel_failed", err, "user", user, "pending_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
