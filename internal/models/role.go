package models

import "time"

type Role struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"uniqueIndex;size:50;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}
