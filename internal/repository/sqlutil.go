package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// notes are stored as a JSON array
func encodeNotes(notes []string) string {
	if notes == nil {
		notes = []string{}
	}
	b, _ := json.Marshal(notes) // []string always marshals
	return string(b)
}

func decodeNotes(s string) ([]string, error) {
	notes := []string{}
	if strings.TrimSpace(s) == "" {
		return notes, nil
	}
	if err := json.Unmarshal([]byte(s), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive contains pattern for LIKE ... ESCAPE '\'.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
