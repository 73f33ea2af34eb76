package store

import (
	"context"

	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"gorm.io/gorm"
)

type Log interface {
	Create(ctx context.Context, entry model.Log) error
	List(ctx context.Context, filter *LogQueryFilter) ([]model.Log, error)
}

type LogStore struct {
	db *gorm.DB
}

// Make sure we conform to Log interface
var _ Log = (*LogStore)(nil)

func NewLogStore(db *gorm.DB) Log {
	return &LogStore{db: db}
}

func (s *LogStore) Create(ctx context.Context, entry model.Log) error {
	return getDB(ctx, s.db).Create(&entry).Error
}

func (s *LogStore) List(ctx context.Context, filter *LogQueryFilter) ([]model.Log, error) {
	var entries []model.Log
	tx := getDB(ctx, s.db).Order("log_id")
	if filter != nil {
		tx = BaseQuerier(*filter).apply(tx)
	}
	if result := tx.Find(&entries); result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
