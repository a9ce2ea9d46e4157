package models

import (
	"gorm.io/gorm"
)

// Goal holds a user's daily nutrition and hydration targets.
// The partial unique index keeps at most one active row per user;
// the upsert path updates in place rather than inserting a second one.
type Goal struct {
	gorm.Model
	UserID   uint `gorm:"not null;uniqueIndex:idx_goals_user_active,where:is_active"`
	IsActive bool `gorm:"uniqueIndex:idx_goals_user_active,where:is_active"`

	DailyCalories float64 // kcal
	DailyProtein  float64 // g
	DailyCarbs    float64 // g
	DailyFat      float64 // g
	DailyWaterMl  float64 // ml
}
