package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/lmercier/bulletin/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE entries (id TEXT PRIMARY KEY, data TEXT NOT NULL)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	return db
}

type entry struct {
	id   string
	data string
}

func scanEntry(s repository.Scanner) (entry, error) {
	var e entry
	err := s.Scan(&e.id, &e.data)
	return e, err
}

func TestQueryOne(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.Exec(`INSERT INTO entries (id, data) VALUES ('a', 'alpha')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	t.Run("existing row", func(t *testing.T) {
		got, err := repository.QueryOne(
			ctx, db,
			"SELECT id, data FROM entries WHERE id = ?",
			[]any{"a"}, scanEntry,
		)
		if err != nil {
			t.Fatalf("QueryOne error: %v", err)
		}
		if got.data != "alpha" {
			t.Errorf("data = %q, want alpha", got.data)
		}
	})

	t.Run("missing row returns ErrNoRows", func(t *testing.T) {
		_, err := repository.QueryOne(
			ctx, db,
			"SELECT id, data FROM entries WHERE id = ?",
			[]any{"zz"}, scanEntry,
		)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("error = %v, want sql.ErrNoRows", err)
		}
	})
}

func TestQueryMany(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	t.Run("empty table returns empty slice", func(t *testing.T) {
		got, err := repository.QueryMany(
			ctx, db,
			"SELECT id, data FROM entries",
			nil, scanEntry,
		)
		if err != nil {
			t.Fatalf("QueryMany error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty slice", got)
		}
	})

	t.Run("returns all rows", func(t *testing.T) {
		for _, e := range []entry{{"a", "alpha"}, {"b", "beta"}} {
			if _, err := db.Exec(`INSERT INTO entries (id, data) VALUES (?, ?)`, e.id, e.data); err != nil {
				t.Fatalf("insert: %v", err)
			}
		}

		got, err := repository.QueryMany(
			ctx, db,
			"SELECT id, data FROM entries ORDER BY id",
			nil, scanEntry,
		)
		if err != nil {
			t.Fatalf("QueryMany error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("rows = %d, want 2", len(got))
		}
		if got[0].id != "a" || got[1].id != "b" {
			t.Errorf("rows = %v", got)
		}
	})
}

func TestExecExpectOne(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.Exec(`INSERT INTO entries (id, data) VALUES ('a', 'alpha')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	t.Run("one row affected", func(t *testing.T) {
		err := repository.ExecExpectOne(
			ctx, db,
			"UPDATE entries SET data = ? WHERE id = ?",
			"updated", "a",
		)
		if err != nil {
			t.Fatalf("ExecExpectOne error: %v", err)
		}
	})

	t.Run("zero rows returns ErrNoRows", func(t *testing.T) {
		err := repository.ExecExpectOne(
			ctx, db,
			"UPDATE entries SET data = ? WHERE id = ?",
			"updated", "zz",
		)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("error = %v, want sql.ErrNoRows", err)
		}
	})
}

func TestWithTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
			_, err := tx.ExecContext(ctx, `INSERT INTO entries (id, data) VALUES ('tx', 'committed')`)
			return struct{}{}, err
		})
		if err != nil {
			t.Fatalf("WithTx error: %v", err)
		}

		var data string
		if err := db.QueryRow(`SELECT data FROM entries WHERE id = 'tx'`).Scan(&data); err != nil {
			t.Fatalf("row not committed: %v", err)
		}
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
			if _, err := tx.ExecContext(ctx, `INSERT INTO entries (id, data) VALUES ('rb', 'doomed')`); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want boom", err)
		}

		var data string
		err = db.QueryRow(`SELECT data FROM entries WHERE id = 'rb'`).Scan(&data)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("row should have been rolled back, got %v", err)
		}
	})
}

func TestMapErrorNil(t *testing.T) {
	got := repository.MapError(nil, errNotFound, errDuplicate)
	if got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapErrorNotFound(t *testing.T) {
	got := repository.MapError(sql.ErrNoRows, errNotFound, errDuplicate)
	if !errors.Is(got, errNotFound) {
		t.Errorf("MapError(ErrNoRows) = %v, want %v", got, errNotFound)
	}
}

func TestMapErrorConstraintViolation(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec(`INSERT INTO entries (id, data) VALUES ('a', 'alpha')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := db.Exec(`INSERT INTO entries (id, data) VALUES ('a', 'again')`)
	if err == nil {
		t.Fatal("expected constraint violation")
	}

	got := repository.MapError(err, errNotFound, errDuplicate)
	if !errors.Is(got, errDuplicate) {
		t.Errorf("MapError(constraint) = %v, want %v", got, errDuplicate)
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	original := errors.New("some other error")
	got := repository.MapError(original, errNotFound, errDuplicate)
	if got != original {
		t.Errorf("MapError(other) = %v, want %v", got, original)
	}
}
