package model

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm/schema"
)

// Broadcast is an announcement sent by an operator.
type Broadcast struct {
	ID         int64     `gorm:"primaryKey;column:broadcast_id;autoIncrement"`
	AdminID    int64     `gorm:"column:admin_id;not null"`
	MessageHy  string    `gorm:"column:message_hy;type:TEXT"`
	MessageEn  string    `gorm:"column:message_en;type:TEXT"`
	ImageURL   string    `gorm:"column:image_url;type:TEXT"`
	Audience   string    `gorm:"column:audience;type:TEXT"`
	Recipients []int64   `gorm:"column:recipients;type:TEXT;serializer:int64_array"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (Broadcast) TableName() string {
	return "broadcasts"
}

func init() {
	schema.RegisterSerializer("int64_array", Int64ArraySerializer{})
}

// Int64ArraySerializer stores a []int64 in the postgres array literal form
// ("{1,2,3}"), which both a BIGINT[] column and a plain text column accept.
type Int64ArraySerializer struct{}

func (Int64ArraySerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	var literal string
	switch value := dbValue.(type) {
	case nil:
		return nil
	case string:
		literal = value
	case []byte:
		literal = string(value)
	default:
		return fmt.Errorf("unsupported data %#v", dbValue)
	}

	ids, err := ParseInt64Array(literal)
	if err != nil {
		return err
	}
	field.ReflectValueOf(ctx, dst).Set(reflect.ValueOf(ids))
	return nil
}

func (Int64ArraySerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue interface{}) (interface{}, error) {
	ids, ok := fieldValue.([]int64)
	if !ok {
		return nil, fmt.Errorf("unsupported data %v", fieldValue)
	}
	return FormatInt64Array(ids), nil
}

func FormatInt64Array(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func ParseInt64Array(literal string) ([]int64, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(literal), "{"), "}")
	if strings.TrimSpace(body) == "" {
		return []int64{}, nil
	}

	parts := strings.Split(body, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid array element %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
