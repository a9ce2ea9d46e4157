package models

import (
	"gorm.io/gorm"
)

// Profile holds personal attributes shown on the profile screen.
// One row per user, created at registration.
type Profile struct {
	gorm.Model
	UserID          uint `gorm:"uniqueIndex;not null"`
	FullName        string
	HeightCm        float64
	CurrentWeightKg float64
}
