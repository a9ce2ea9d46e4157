package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/dinner/snack)
type Meal struct {
	gorm.Model
	UserID  uint       `gorm:"index;not null"` // FK → users.id
	Type    string     `gorm:"not null"`       // "breakfast"|"lunch"|"dinner"|"snack"
	EatenAt time.Time  `gorm:"index;not null"`
	Items   []MealItem `gorm:"constraint:OnDelete:CASCADE"`
}

// FoodSnapshot is the food's nutrition as entered at logging time,
// denormalized into the item so later catalog edits never rewrite history.
// Macro values are per the logged serving amount, not per quantity.
type FoodSnapshot struct {
	Name          string  `gorm:"not null" json:"name"`
	ServingAmount float64 `json:"serving_amount"`
	ServingUnit   string  `json:"serving_unit"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
}

// MealItem stores quantity-scaled macros plus the embedded snapshot.
// Scaled values = snapshot per-serving values × quantity, computed once
// at creation and never recomputed.
type MealItem struct {
	gorm.Model
	MealID   uint    `gorm:"index;not null"`
	Quantity float64 // positive
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	Food FoodSnapshot `gorm:"embedded;embeddedPrefix:food_"`
}
