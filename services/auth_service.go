package services

import (
	"context"
	"errors"
	"strings"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register creates the auth user and its empty profile row.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return validationErr("email and password are required")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		UserID:   uuid.NewString(),
		Email:    email,
		Password: hashed,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}

	profile := models.Profile{UserID: user.ID, FullName: strings.TrimSpace(fullName)}
	return s.db.WithContext(ctx).Create(&profile).Error
}

// Authenticate checks credentials and returns a signed JWT.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND disabled = ?", strings.ToLower(strings.TrimSpace(email)), false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("user not found or disabled")
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
