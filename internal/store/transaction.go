package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type txKey struct{}

var errNoTransaction = errors.New("no transaction in progress")

// Tx is a gorm transaction carried by a context. Every sub-store called with
// that context runs its statements inside it.
type Tx struct {
	db *gorm.DB
}

func (t *Tx) Db() (*gorm.DB, error) {
	if t.db == nil {
		return nil, errNoTransaction
	}
	return t.db, nil
}

func (t *Tx) Commit() error {
	return t.end("commit", func(db *gorm.DB) *gorm.DB { return db.Commit() })
}

func (t *Tx) Rollback() error {
	return t.end("rollback", func(db *gorm.DB) *gorm.DB { return db.Rollback() })
}

func (t *Tx) end(op string, fn func(db *gorm.DB) *gorm.DB) error {
	if t.db == nil {
		return errNoTransaction
	}
	if err := fn(t.db).Error; err != nil {
		zap.S().Named("store").Errorw("failed to end transaction", "op", op, "error", err)
		return err
	}
	t.db = nil
	return nil
}

// Commit commits the transaction carried by ctx, if any, and returns a context
// without it.
func Commit(ctx context.Context) (context.Context, error) {
	return endTransaction(ctx, (*Tx).Commit)
}

// Rollback rolls back the transaction carried by ctx, if any, and returns a
// context without it.
func Rollback(ctx context.Context) (context.Context, error) {
	return endTransaction(ctx, (*Tx).Rollback)
}

func endTransaction(ctx context.Context, end func(*Tx) error) (context.Context, error) {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	if !ok {
		return ctx, nil
	}
	return context.WithValue(ctx, txKey{}, nil), end(tx)
}

// WithTx runs fn inside a transaction of s. The transaction is committed when
// fn succeeds and rolled back otherwise.
func WithTx(ctx context.Context, s Store, fn func(ctx context.Context) error) error {
	txCtx, err := s.NewTransactionContext(ctx)
	if err != nil {
		return err
	}
	if err := fn(txCtx); err != nil {
		if _, rerr := Rollback(txCtx); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	_, err = Commit(txCtx)
	return err
}

// FromContext returns the transaction carried by ctx or nil.
func FromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	if !ok {
		return nil
	}
	db, err := tx.Db()
	if err != nil {
		return nil
	}
	return db
}

func newTransactionContext(ctx context.Context, db *gorm.DB) (context.Context, error) {
	if _, ok := ctx.Value(txKey{}).(*Tx); ok {
		return ctx, nil
	}

	tx := db.Session(&gorm.Session{Context: ctx}).Begin()
	if tx.Error != nil {
		return ctx, tx.Error
	}
	return context.WithValue(ctx, txKey{}, &Tx{db: tx}), nil
}

// getDB returns the transaction carried by ctx or db.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
