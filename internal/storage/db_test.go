package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// Foreign key enforcement is a per-connection sqlite setting carried in the
// DSN. With the idle pool disabled every statement runs on a fresh
// connection, so a violation slipping through on any of them would show up.
func TestForeignKeysEnforcedOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	db.SetMaxIdleConns(0)

	tasks := NewTaskRepo(db)
	for i := 0; i < 5; i++ {
		_, err := tasks.Insert(ctx, TaskInsert{ProjectID: 999, Title: "orphan", Points: 10})
		if err == nil {
			t.Fatalf("insert %d: task with missing project accepted", i)
		}
	}
}
