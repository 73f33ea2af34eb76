package store

import (
	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

func (b BaseQuerier) apply(tx *gorm.DB) *gorm.DB {
	for _, fn := range b.QueryFn {
		tx = fn(tx)
	}
	return tx
}

type UserQueryFilter BaseQuerier

func NewUserQueryFilter() *UserQueryFilter {
	return &UserQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *UserQueryFilter) ByLanguage(lang string) *UserQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("language = ?", lang)
	})
	return f
}

func (f *UserQueryFilter) ByIDs(ids []int64) *UserQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id IN ?", ids)
	})
	return f
}

type LogQueryFilter BaseQuerier

func NewLogQueryFilter() *LogQueryFilter {
	return &LogQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (f *LogQueryFilter) ByUserID(id int64) *LogQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", id)
	})
	return f
}

func (f *LogQueryFilter) ByAction(action string) *LogQueryFilter {
	f.QueryFn = append(f.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("action = ?", action)
	})
	return f
}

type BroadcastQueryOptions BaseQuerier

func NewBroadcastQueryOptions() *BroadcastQueryOptions {
	return &BroadcastQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

// Limit results
func (o *BroadcastQueryOptions) WithLimit(limit int) *BroadcastQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *BroadcastQueryOptions) ByAdminID(id int64) *BroadcastQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("admin_id = ?", id)
	})
	return o
}
