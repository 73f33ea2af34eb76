package store

import (
	"context"

	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	User() User
	Log() Log
	Broadcast() Broadcast
	Admin() Admin
	Statistics(ctx context.Context) ([]model.LanguageCount, error)
	InitialMigration() error
	Ping(ctx context.Context) error
	Close() error
}

type DataStore struct {
	db        *gorm.DB
	user      User
	log       Log
	broadcast Broadcast
	admin     Admin
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:        db,
		user:      NewUserStore(db),
		log:       NewLogStore(db),
		broadcast: NewBroadcastStore(db),
		admin:     NewAdminStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) User() User {
	return s.user
}

func (s *DataStore) Log() Log {
	return s.log
}

func (s *DataStore) Broadcast() Broadcast {
	return s.broadcast
}

func (s *DataStore) Admin() Admin {
	return s.admin
}

func (s *DataStore) Statistics(ctx context.Context) ([]model.LanguageCount, error) {
	return s.user.CountByLanguage(ctx)
}

// InitialMigration creates the schema from the models. Production postgres
// databases are migrated with the SQL files of pkg/migrations instead.
func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.User{}, &model.Log{}, &model.Broadcast{}, &model.Admin{})
}

func (s *DataStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
