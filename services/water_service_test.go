package services_test

import (
	"context"
	"testing"
	"time"

	"backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWater_Validation(t *testing.T) {
	db := newTestDB(t)
	userID := newTestUser(t, db, "water@example.com")
	svc := services.NewWaterService(db)

	for _, amount := range []float64{0, -250} {
		_, err := svc.Add(context.Background(), userID, amount, time.Now())
		assert.ErrorIs(t, err, services.ErrValidation)
	}
}

func TestDayTotal_SumsSameDayOnly(t *testing.T) {
	db := newTestDB(t)
	userID := newTestUser(t, db, "total@example.com")
	svc := services.NewWaterService(db)

	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	_, err := svc.Add(context.Background(), userID, 250, day.Add(9*time.Hour))
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, 500, day.Add(19*time.Hour))
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, 999, day.Add(26*time.Hour)) // next day
	require.NoError(t, err)

	total, err := svc.DayTotal(context.Background(), userID, day, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 750.0, total)
}

func TestDayTotal_ZoneOffsetBounds(t *testing.T) {
	db := newTestDB(t)
	userID := newTestUser(t, db, "zoned@example.com")
	svc := services.NewWaterService(db)

	east := time.FixedZone("UTC+2", 2*3600)
	// 23:30 UTC on the 25th is 01:30 on the 26th in UTC+2
	_, err := svc.Add(context.Background(), userID, 300, time.Date(2026, 8, 25, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	total, err := svc.DayTotal(context.Background(), userID, time.Date(2026, 8, 26, 12, 0, 0, 0, east), east)
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
}
