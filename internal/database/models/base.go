package models

import (
	"time"
)

// BaseModel provides common fields for all models with bigserial primary keys.
// IDs are assigned by the database on insert and immutable afterwards.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
