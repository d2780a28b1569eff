package cli

import (
	"context"
	"fmt"

	"github.com/hajnalm/ClearPoint/internal/config"
	"github.com/hajnalm/ClearPoint/internal/store"
	"github.com/hajnalm/ClearPoint/internal/store/memorystore"
	"github.com/hajnalm/ClearPoint/internal/store/postgres"
	"github.com/hajnalm/ClearPoint/internal/store/sqlite"
)

func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memorystore.NewTaskStore(), nil
	case config.DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.DriverPostgres:
		st, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
