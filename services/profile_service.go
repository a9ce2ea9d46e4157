package services

import (
	"context"
	"errors"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

type ProfileInput struct {
	FullName        *string  `json:"full_name"`
	HeightCm        *float64 `json:"height_cm"`
	CurrentWeightKg *float64 `json:"current_weight_kg"`
}

// Get returns the profile plus BMI when height and weight are both set.
func (s *ProfileService) Get(ctx context.Context, userID uint) (map[string]interface{}, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"full_name":         p.FullName,
		"height_cm":         p.HeightCm,
		"current_weight_kg": p.CurrentWeightKg,
	}
	if bmi, err := utils.CalculateBMI(p.HeightCm, p.CurrentWeightKg); err == nil {
		out["bmi"] = round2(bmi)
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out, nil
}

// Update applies only the fields present in the input.
func (s *ProfileService) Update(ctx context.Context, userID uint, in ProfileInput) error {
	var p models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = models.Profile{UserID: userID}
		} else {
			return err
		}
	}

	if in.FullName != nil {
		p.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.HeightCm != nil {
		if *in.HeightCm < 0 {
			return validationErr("height_cm must not be negative")
		}
		p.HeightCm = *in.HeightCm
	}
	if in.CurrentWeightKg != nil {
		if *in.CurrentWeightKg < 0 {
			return validationErr("current_weight_kg must not be negative")
		}
		p.CurrentWeightKg = *in.CurrentWeightKg
	}

	return s.db.WithContext(ctx).Save(&p).Error
}
