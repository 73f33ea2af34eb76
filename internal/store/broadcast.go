package store

import (
	"context"

	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"gorm.io/gorm"
)

type Broadcast interface {
	Create(ctx context.Context, broadcast model.Broadcast) (*model.Broadcast, error)
	List(ctx context.Context, opts *BroadcastQueryOptions) ([]model.Broadcast, error)
}

type BroadcastStore struct {
	db *gorm.DB
}

// Make sure we conform to Broadcast interface
var _ Broadcast = (*BroadcastStore)(nil)

func NewBroadcastStore(db *gorm.DB) Broadcast {
	return &BroadcastStore{db: db}
}

func (s *BroadcastStore) Create(ctx context.Context, broadcast model.Broadcast) (*model.Broadcast, error) {
	if broadcast.Recipients == nil {
		broadcast.Recipients = []int64{}
	}
	if result := getDB(ctx, s.db).Create(&broadcast); result.Error != nil {
		return nil, result.Error
	}
	return &broadcast, nil
}

// List returns the broadcasts, most recent first.
func (s *BroadcastStore) List(ctx context.Context, opts *BroadcastQueryOptions) ([]model.Broadcast, error) {
	var broadcasts []model.Broadcast
	tx := getDB(ctx, s.db).Order("broadcast_id DESC")
	if opts != nil {
		tx = BaseQuerier(*opts).apply(tx)
	}
	if result := tx.Find(&broadcasts); result.Error != nil {
		return nil, result.Error
	}
	return broadcasts, nil
}
