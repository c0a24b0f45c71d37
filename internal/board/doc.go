// Package board projects maintenance tickets into kanban columns and
// models the drag-and-drop gesture that proposes status transitions.
//
// Everything here is pure: the package never talks to a store. Callers
// pass in the authoritative record list and act on the returned
// proposals; a status only changes after the caller commits a proposal
// through the maintenance service and reports back via Session.Committed.
package board
