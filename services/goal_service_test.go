package services_test

import (
	"context"
	"testing"

	"backend/models"
	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_DefaultsWhenNoGoals(t *testing.T) {
	db := newTestDB(t)
	userID := newTestUser(t, db, "nogoals@example.com")
	svc := services.NewGoalService(db)

	goals, err := svc.GetActive(context.Background(), userID)
	require.NoError(t, err)
	require.Nil(t, goals)

	out := svc.Compare(services.DailySummary{Calories: 1000, WaterMl: 1000}, goals)
	assert.True(t, out.UsingDefaults)
	assert.Equal(t, 2000.0, out.Calories.Target)
	assert.Equal(t, 150.0, out.Protein.Target)
	assert.Equal(t, 200.0, out.Carbs.Target)
	assert.Equal(t, 65.0, out.Fat.Target)
	assert.Equal(t, 2000.0, out.Water.Target)
	assert.Equal(t, 50.0, out.Calories.Percent)

	// defaults are display-only, never persisted
	var count int64
	require.NoError(t, db.Model(&models.Goal{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCompare_PercentEdgeCases(t *testing.T) {
	svc := services.NewGoalService(nil)

	g := &models.Goal{DailyCalories: 2000, DailyWaterMl: 0}

	out := svc.Compare(services.DailySummary{Calories: 2000, WaterMl: 500}, g)
	assert.Equal(t, 100.0, out.Calories.Percent)
	assert.Equal(t, 100.0, out.Calories.Display)

	// zero target never divides; 0%, not NaN/Inf
	assert.Equal(t, 0.0, out.Water.Percent)
	assert.Equal(t, 0.0, out.Water.Display)

	// over goal: raw percent kept, display clamped
	over := svc.Compare(services.DailySummary{Calories: 3000}, g)
	assert.Equal(t, 150.0, over.Calories.Percent)
	assert.Equal(t, 100.0, over.Calories.Display)
}

func TestUpsert_SingleActiveRow(t *testing.T) {
	db := newTestDB(t)
	userID := newTestUser(t, db, "goals@example.com")
	svc := services.NewGoalService(db)

	first, err := svc.Upsert(context.Background(), userID, services.GoalInput{
		DailyCalories: 2200, DailyProtein: 160, DailyCarbs: 250, DailyFat: 70, DailyWaterMl: 2500,
	})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := svc.Upsert(context.Background(), userID, services.GoalInput{
		DailyCalories: 1800, DailyProtein: 140, DailyCarbs: 180, DailyFat: 60, DailyWaterMl: 2000,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "upsert must update in place")

	var count int64
	require.NoError(t, db.Model(&models.Goal{}).Where("user_id = ? AND is_active = ?", userID, true).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	active, err := svc.GetActive(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 1800.0, active.DailyCalories)
}
