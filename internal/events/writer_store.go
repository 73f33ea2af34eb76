package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"gorm.io/gorm"
)

// StoreWriter appends events to the logs table.
type StoreWriter struct {
	store store.Store
}

func NewStoreWriter(s store.Store) *StoreWriter {
	return &StoreWriter{store: s}
}

func (w *StoreWriter) Write(ctx context.Context, e Event) error {
	entry := model.Log{
		UserID:    e.UserID,
		Action:    e.Action,
		Details:   e.Details,
		CreatedAt: e.Time,
	}

	err := w.store.Log().Create(ctx, entry)
	if errors.Is(err, gorm.ErrForeignKeyViolated) && e.UserID != nil {
		// the user never registered, keep the event without the link
		entry.Details = strings.TrimSpace(fmt.Sprintf("user_id=%d %s", *e.UserID, e.Details))
		entry.UserID = nil
		err = w.store.Log().Create(ctx, entry)
	}
	return err
}

func (w *StoreWriter) Close(_ context.Context) error {
	return nil
}
