package root

import (
	"context"
	"database/sql"
	"os"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/engine"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}

// currentUserKey resolves the acting user: --user flag, FLEXBOARD_USER env,
// then the default local user.
func currentUserKey() string {
	if userFlag != "" {
		return userFlag
	}
	if key := os.Getenv("FLEXBOARD_USER"); key != "" {
		return key
	}
	return storage.DefaultUserKey
}
