package services

import (
	"context"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// LogMealInput is one manually entered food. Macro values are per serving;
// scaling by Quantity happens here, once, at creation.
type LogMealInput struct {
	MealType    string    `json:"meal_type"`
	EatenAt     time.Time `json:"eaten_at"` // zero value means now
	Name        string    `json:"name"`
	Calories    *float64  `json:"calories"` // per serving, required; pointer so an absent field is not a valid 0
	Protein     float64   `json:"protein"`  // per serving, 0 when absent
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	ServingUnit string    `json:"serving_unit"` // defaults to "serving"
	Quantity    float64   `json:"quantity"`     // positive, defaults to 1
}

func (in *LogMealInput) validate() error {
	in.MealType = strings.ToLower(strings.TrimSpace(in.MealType))
	if !mealTypes[in.MealType] {
		return validationErr("meal_type must be breakfast, lunch, dinner or snack")
	}
	if strings.TrimSpace(in.Name) == "" {
		return validationErr("food name is required")
	}
	if in.Calories == nil {
		return validationErr("calorie value is required")
	}
	if *in.Calories < 0 {
		return validationErr("calories must not be negative")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return validationErr("quantity must be a positive number")
	}
	if in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return validationErr("macro values must not be negative")
	}
	if in.ServingUnit == "" {
		in.ServingUnit = "serving"
	}
	if in.EatenAt.IsZero() {
		in.EatenAt = time.Now()
	}
	return nil
}

// LogMeal creates the parent meal, then one item whose scaled macros are
// per-serving values × quantity, with the food snapshot embedded. The two
// writes are sequenced, not atomic: when the item write fails the created
// meal stays behind and the caller gets a MealOrphanedError naming it.
func (s *MealService) LogMeal(ctx context.Context, userID uint, in LogMealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	meal := &models.Meal{UserID: userID, Type: in.MealType, EatenAt: in.EatenAt}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}

	item := &models.MealItem{
		MealID:   meal.ID,
		Quantity: in.Quantity,
		Calories: *in.Calories * in.Quantity,
		Protein:  in.Protein * in.Quantity,
		Carbs:    in.Carbs * in.Quantity,
		Fat:      in.Fat * in.Quantity,
		Food: models.FoodSnapshot{
			Name:          strings.TrimSpace(in.Name),
			ServingAmount: in.Quantity,
			ServingUnit:   in.ServingUnit,
			Calories:      *in.Calories,
			Protein:       in.Protein,
			Carbs:         in.Carbs,
			Fat:           in.Fat,
		},
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, &MealOrphanedError{MealID: meal.ID, Err: err}
	}

	var populated models.Meal
	if err := s.db.WithContext(ctx).Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, from.UTC(), to.UTC()).
		Order("eaten_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	// resolve ownership before touching items so one user cannot strip
	// another user's meal
	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).
		Where("meal_id = ?", meal.ID).
		Delete(&models.MealItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&meal).Error
}
