package services

import (
	"context"
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// DefaultGoals are display-only fallbacks used when no active row exists.
// They are never written to the store.
func DefaultGoals() models.Goal {
	return models.Goal{
		DailyCalories: 2000,
		DailyProtein:  150,
		DailyCarbs:    200,
		DailyFat:      65,
		DailyWaterMl:  2000,
	}
}

// GetActive returns the user's active goals, or nil when none are configured.
func (s *GoalService) GetActive(ctx context.Context, userID uint) (*models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

type GoalInput struct {
	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyWaterMl  float64 `json:"daily_water_ml"`
}

// Upsert updates the active goals row in place, or inserts one with
// is_active = true. The unique index on (user_id, is_active) keeps this
// at 0 or 1 active rows per user.
func (s *GoalService) Upsert(ctx context.Context, userID uint, in GoalInput) (*models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g = models.Goal{
			UserID:        userID,
			IsActive:      true,
			DailyCalories: in.DailyCalories,
			DailyProtein:  in.DailyProtein,
			DailyCarbs:    in.DailyCarbs,
			DailyFat:      in.DailyFat,
			DailyWaterMl:  in.DailyWaterMl,
		}
		if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
			return nil, err
		}
		return &g, nil
	}
	if err != nil {
		return nil, err
	}

	g.DailyCalories = in.DailyCalories
	g.DailyProtein = in.DailyProtein
	g.DailyCarbs = in.DailyCarbs
	g.DailyFat = in.DailyFat
	g.DailyWaterMl = in.DailyWaterMl
	if err := s.db.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// MetricProgress carries both the raw percent (for over-goal detection)
// and the display percent clamped to [0,100] for progress bars.
type MetricProgress struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
	Display float64 `json:"display_percent"`
}

type GoalProgress struct {
	Calories      MetricProgress `json:"calories"`
	Protein       MetricProgress `json:"protein"`
	Carbs         MetricProgress `json:"carbs"`
	Fat           MetricProgress `json:"fat"`
	Water         MetricProgress `json:"water"`
	UsingDefaults bool           `json:"using_defaults"`
}

// Compare combines a day's summary with the active goals. A nil goals
// record means the defaults apply for display. A zero target yields 0%,
// never NaN or Inf.
func (s *GoalService) Compare(sum DailySummary, g *models.Goal) GoalProgress {
	out := GoalProgress{}
	if g == nil {
		def := DefaultGoals()
		g = &def
		out.UsingDefaults = true
	}
	out.Calories = progress(sum.Calories, g.DailyCalories)
	out.Protein = progress(sum.Protein, g.DailyProtein)
	out.Carbs = progress(sum.Carbs, g.DailyCarbs)
	out.Fat = progress(sum.Fat, g.DailyFat)
	out.Water = progress(sum.WaterMl, g.DailyWaterMl)
	return out
}

func progress(actual, target float64) MetricProgress {
	p := pct(actual, target)
	d := p
	if d > 100 {
		d = 100
	}
	if d < 0 {
		d = 0
	}
	return MetricProgress{Actual: actual, Target: target, Percent: p, Display: d}
}

func pct(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round2(actual / target * 100.0)
}
