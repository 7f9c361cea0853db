package models

import "time"

// BaseModel carries the integer primary key and timestamps shared by all
// persisted rows.
type BaseModel struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
