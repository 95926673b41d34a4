package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dormdesk/dormdesk/internal/store"
)

// storeTx wraps *sql.Tx as a store.Tx. Nested transactions are rejected to
// stop callers from accidentally starting a transaction within one.
type storeTx struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *storeTx { return &storeTx{tx: tx} }

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }

func (t *storeTx) Users() store.Users               { return &usersRepo{q: t.tx} }
func (t *storeTx) Roles() store.Roles               { return &rolesRepo{q: t.tx} }
func (t *storeTx) Dorms() store.Dorms               { return &dormsRepo{q: t.tx} }
func (t *storeTx) Rooms() store.Rooms               { return &roomsRepo{q: t.tx} }
func (t *storeTx) Reservations() store.Reservations { return &reservationsRepo{q: t.tx} }
func (t *storeTx) Contracts() store.Contracts       { return &contractsRepo{q: t.tx} }
func (t *storeTx) Bills() store.Bills               { return &billsRepo{q: t.tx} }
func (t *storeTx) Repairs() store.Repairs           { return &repairsRepo{q: t.tx} }

func (t *storeTx) ApplyMigrations() error {
	return errors.New("sqlite: migrations cannot run inside a transaction")
}

func (t *storeTx) Tx(context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *storeTx) WithTx(context.Context, func(tx store.Tx) error) error {
	return errors.New("sqlite: nested transactions are not supported")
}

func (t *storeTx) Close() error { return nil }

func (t *storeTx) Ping(context.Context) error { return nil }
