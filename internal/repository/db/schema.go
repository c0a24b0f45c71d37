package db

import "strings"

// column types that differ between backends
type columnTypes struct {
	serial    string // auto-increment primary key
	timestamp string
	money     string
	boolean   string
	falseLit  string
}

var sqliteTypes = columnTypes{
	serial:    "INTEGER PRIMARY KEY AUTOINCREMENT",
	timestamp: "TIMESTAMP",
	money:     "REAL",
	boolean:   "BOOLEAN",
	falseLit:  "0",
}

var postgresTypes = columnTypes{
	serial:    "BIGSERIAL PRIMARY KEY",
	timestamp: "TIMESTAMPTZ",
	money:     "DOUBLE PRECISION",
	boolean:   "BOOLEAN",
	falseLit:  "FALSE",
}

const schemaRecords = `
CREATE TABLE IF NOT EXISTS maintenance_records (
    id TEXT PRIMARY KEY,
    asset_tag TEXT NOT NULL,
    asset_category TEXT NOT NULL,
    asset_make TEXT NOT NULL DEFAULT '',
    asset_model TEXT NOT NULL DEFAULT '',
    issue TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    status TEXT NOT NULL,
    priority TEXT NOT NULL,
    technician TEXT NOT NULL DEFAULT '',
    reported_by TEXT NOT NULL,
    reported_date TEXT NOT NULL,
    scheduled_date TEXT NOT NULL DEFAULT '',
    completed_date TEXT NOT NULL DEFAULT '',
    estimated_cost {{money}},
    actual_cost {{money}},
    notes TEXT NOT NULL DEFAULT '[]',
    created_at {{timestamp}} NOT NULL,
    updated_at {{timestamp}} NOT NULL
);
`

// seq orders events that share a timestamp.
const schemaTimeline = `
CREATE TABLE IF NOT EXISTS maintenance_timeline_events (
    seq {{serial}},
    id TEXT NOT NULL UNIQUE,
    record_id TEXT NOT NULL REFERENCES maintenance_records(id),
    type TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    user_name TEXT NOT NULL,
    occurred_at {{timestamp}} NOT NULL
);
`

const schemaComments = `
CREATE TABLE IF NOT EXISTS maintenance_comments (
    seq {{serial}},
    id TEXT NOT NULL UNIQUE,
    record_id TEXT NOT NULL REFERENCES maintenance_records(id),
    author TEXT NOT NULL,
    content TEXT NOT NULL,
    is_internal {{boolean}} NOT NULL DEFAULT {{false}},
    created_at {{timestamp}} NOT NULL
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id {{serial}},
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

var schemaIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_records_asset_tag ON maintenance_records (asset_tag)`,
	`CREATE INDEX IF NOT EXISTS idx_records_status ON maintenance_records (status)`,
	`CREATE INDEX IF NOT EXISTS idx_timeline_record ON maintenance_timeline_events (record_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_record ON maintenance_comments (record_id)`,
}

func schema(t columnTypes) []string {
	r := strings.NewReplacer(
		"{{serial}}", t.serial,
		"{{timestamp}}", t.timestamp,
		"{{money}}", t.money,
		"{{boolean}}", t.boolean,
		"{{false}}", t.falseLit,
	)
	out := []string{
		r.Replace(schemaRecords),
		r.Replace(schemaTimeline),
		r.Replace(schemaComments),
		r.Replace(schemaUsers),
	}
	return append(out, schemaIndexes...)
}
