package task

import (
	"context"
	"errors"

	"github.com/hajnalm/ClearPoint/internal/store"
)

var errStoreDown = errors.New("connection refused")

// brokenStore fails every transaction, as an unreachable database would.
type brokenStore struct{}

func (brokenStore) Begin(context.Context) (store.Tx, error) { return nil, errStoreDown }
func (brokenStore) Ping(context.Context) error               { return errStoreDown }
func (brokenStore) Close() error                             { return nil }
