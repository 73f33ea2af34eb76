package store

import (
	"context"

	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Admin interface {
	IsAdmin(ctx context.Context, id int64) (bool, error)
	Add(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Admin, error)
}

type AdminStore struct {
	db *gorm.DB
}

// Make sure we conform to Admin interface
var _ Admin = (*AdminStore)(nil)

func NewAdminStore(db *gorm.DB) Admin {
	return &AdminStore{db: db}
}

func (s *AdminStore) IsAdmin(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := getDB(ctx, s.db).Model(&model.Admin{}).Where("admin_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *AdminStore) Add(ctx context.Context, id int64) error {
	return getDB(ctx, s.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Admin{ID: id}).Error
}

func (s *AdminStore) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := getDB(ctx, s.db).Order("admin_id").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
