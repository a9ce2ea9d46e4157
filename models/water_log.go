package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	AmountMl float64   // positive
	LoggedAt time.Time `gorm:"index;not null"`
}
