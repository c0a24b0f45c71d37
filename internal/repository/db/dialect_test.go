package db

import (
	"strings"
	"testing"
)

func TestDialectFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "sqlite", want: "sqlite"},
		{in: "SQLite3", want: "sqlite"},
		{in: "postgres", want: "pgx"},
		{in: "pgx", want: "pgx"},
		{in: "mysql", wantErr: true},
	}
	for _, c := range cases {
		d, err := DialectFor(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("DialectFor(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("DialectFor(%q): %v", c.in, err)
		}
		if d.DriverName() != c.want {
			t.Fatalf("DialectFor(%q).DriverName() = %q, want %q", c.in, d.DriverName(), c.want)
		}
	}
}

func TestPostgresRebind(t *testing.T) {
	t.Parallel()

	got := Postgres{}.Rebind(`SELECT id FROM t WHERE a = ? AND b = '?' AND c IN (?, ?)`)
	want := `SELECT id FROM t WHERE a = $1 AND b = '?' AND c IN ($2, $3)`
	if got != want {
		t.Fatalf("Rebind:\n got %s\nwant %s", got, want)
	}
	if q := (SQLite{}).Rebind("a = ?"); q != "a = ?" {
		t.Fatalf("sqlite rebind changed query: %s", q)
	}
}

func TestSchemaPerDialect(t *testing.T) {
	t.Parallel()

	for name, d := range map[string]Dialect{"sqlite": SQLite{}, "postgres": Postgres{}} {
		stmts := d.Schema()
		all := strings.Join(stmts, "\n")
		if strings.Contains(all, "{{") {
			t.Fatalf("%s schema has unreplaced markers", name)
		}
		for _, table := range []string{"maintenance_records", "maintenance_timeline_events", "maintenance_comments", "users"} {
			if !strings.Contains(all, "CREATE TABLE IF NOT EXISTS "+table) {
				t.Fatalf("%s schema misses table %s", name, table)
			}
		}
	}
	if !strings.Contains(strings.Join(Postgres{}.Schema(), ""), "BIGSERIAL") {
		t.Fatal("postgres schema should use BIGSERIAL keys")
	}
	if !strings.Contains(strings.Join(SQLite{}.Schema(), ""), "AUTOINCREMENT") {
		t.Fatal("sqlite schema should use AUTOINCREMENT keys")
	}
}
