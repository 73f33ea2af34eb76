package store

import (
	"context"
	"errors"
	"time"

	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultLanguage = "hy"

type User interface {
	Upsert(ctx context.Context, user UserUpsert) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, filter *UserQueryFilter) (model.UserList, error)
	SetLanguage(ctx context.Context, id int64, language string) error
	SetPhone(ctx context.Context, id int64, phone string) error
	CountByLanguage(ctx context.Context) ([]model.LanguageCount, error)
}

// UserUpsert carries the profile seen on an incoming message. Nil fields keep
// the stored value of an existing user.
type UserUpsert struct {
	ID          int64
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber *string
	Language    *string
}

type UserStore struct {
	db *gorm.DB
}

// Make sure we conform to User interface
var _ User = (*UserStore)(nil)

func NewUserStore(db *gorm.DB) User {
	return &UserStore{db: db}
}

func (s *UserStore) Upsert(ctx context.Context, u UserUpsert) (*model.User, error) {
	now := time.Now()
	user := model.User{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Language:    defaultLanguage,
		LastSeenAt:  now,
	}
	if u.Language != nil {
		user.Language = *u.Language
	}

	updates := map[string]interface{}{
		"username":     gorm.Expr("excluded.username"),
		"first_name":   gorm.Expr("excluded.first_name"),
		"last_name":    gorm.Expr("excluded.last_name"),
		"phone_number": gorm.Expr("COALESCE(excluded.phone_number, users.phone_number)"),
		"last_seen_at": gorm.Expr("excluded.last_seen_at"),
	}
	if u.Language != nil {
		updates["language"] = gorm.Expr("excluded.language")
	}

	result := getDB(ctx, s.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return s.Get(ctx, u.ID)
}

func (s *UserStore) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	result := getDB(ctx, s.db).Where("user_id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context, filter *UserQueryFilter) (model.UserList, error) {
	var users model.UserList
	tx := getDB(ctx, s.db).Model(&users).Order("user_id")
	if filter != nil {
		tx = BaseQuerier(*filter).apply(tx)
	}
	if result := tx.Find(&users); result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// SetLanguage stores the display language of a user, registering the user
// when it is not known yet.
func (s *UserStore) SetLanguage(ctx context.Context, id int64, language string) error {
	user := model.User{ID: id, Language: language, LastSeenAt: time.Now()}
	return getDB(ctx, s.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"language", "last_seen_at"}),
	}).Create(&user).Error
}

func (s *UserStore) SetPhone(ctx context.Context, id int64, phone string) error {
	result := getDB(ctx, s.db).Model(&model.User{}).Where("user_id = ?", id).Update("phone_number", phone)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *UserStore) CountByLanguage(ctx context.Context) ([]model.LanguageCount, error) {
	var counts []model.LanguageCount
	result := getDB(ctx, s.db).Model(&model.User{}).
		Select("language, COUNT(*) AS count").
		Group("language").
		Order("language").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}
	return counts, nil
}
