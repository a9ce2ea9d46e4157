package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type WaterService struct{ db *gorm.DB }

func NewWaterService(db *gorm.DB) *WaterService { return &WaterService{db: db} }

// Add records one water intake event. Amount must be positive; a zero
// logged-at defaults to now.
func (s *WaterService) Add(ctx context.Context, userID uint, amountMl float64, loggedAt time.Time) (*models.WaterLog, error) {
	if amountMl <= 0 {
		return nil, validationErr("amount_ml must be a positive number")
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}
	log := &models.WaterLog{UserID: userID, AmountMl: amountMl, LoggedAt: loggedAt}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *WaterService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, from, to).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

// DayTotal returns the summed intake for one local day.
func (s *WaterService) DayTotal(ctx context.Context, userID uint, date time.Time, loc *time.Location) (float64, error) {
	from := dayStart(date, loc)
	// UTC bounds, same reasoning as SummaryService.DaySummary
	logs, err := s.ListByDateRange(ctx, userID, from.UTC(), from.Add(24*time.Hour).UTC())
	if err != nil {
		return 0, err
	}
	var total float64
	for _, l := range logs {
		total += l.AmountMl
	}
	return total, nil
}
