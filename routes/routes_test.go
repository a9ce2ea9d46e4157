package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/config"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	config.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return routes.SetupRouter(db, time.UTC)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "password": "hunter22", "full_name": "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/dashboard/today", "/insights/week", "/meals", "/goals", "/profile"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLogMealAndDashboardFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "flow@example.com")

	w := doJSON(t, r, http.MethodPost, "/meals", token, gin.H{
		"meal_type": "breakfast",
		"name":      "Oatmeal",
		"calories":  300,
		"protein":   10,
		"carbs":     50,
		"fat":       5,
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/water", token, gin.H{"amount_ml": 250})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/water", token, gin.H{"amount_ml": 500})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var added struct {
		DayTotalMl float64 `json:"day_total_ml"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.Equal(t, 750.0, added.DayTotalMl)

	w = doJSON(t, r, http.MethodGet, "/dashboard/today", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dash struct {
		Summary struct {
			Calories float64 `json:"calories"`
			WaterMl  float64 `json:"water_ml"`
		} `json:"summary"`
		Progress struct {
			Calories struct {
				Target  float64 `json:"target"`
				Percent float64 `json:"percent"`
			} `json:"calories"`
			UsingDefaults bool `json:"using_defaults"`
		} `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, 600.0, dash.Summary.Calories)
	assert.Equal(t, 750.0, dash.Summary.WaterMl)
	assert.True(t, dash.Progress.UsingDefaults)
	assert.Equal(t, 2000.0, dash.Progress.Calories.Target)
	assert.Equal(t, 30.0, dash.Progress.Calories.Percent)
}

func TestGoalsRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "goals@example.com")

	w := doJSON(t, r, http.MethodGet, "/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var before struct {
		UsingDefaults bool `json:"using_defaults"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
	assert.True(t, before.UsingDefaults)

	w = doJSON(t, r, http.MethodPut, "/goals", token, gin.H{
		"daily_calories": 1800, "daily_protein": 140, "daily_carbs": 180,
		"daily_fat": 60, "daily_water_ml": 2500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after struct {
		UsingDefaults bool `json:"using_defaults"`
		Goals         struct {
			DailyCalories float64 `json:"DailyCalories"`
		} `json:"goals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.False(t, after.UsingDefaults)
	assert.Equal(t, 1800.0, after.Goals.DailyCalories)
}

func TestProfileRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "profile@example.com")

	w := doJSON(t, r, http.MethodPut, "/profile", token, gin.H{
		"full_name": "Jess Example", "height_cm": 170, "current_weight_kg": 70,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Jess Example", profile["full_name"])
	assert.InDelta(t, 24.22, profile["bmi"], 0.01)
	assert.Equal(t, "Normal weight", profile["bmi_category"])
}

func TestInsightsWeek(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "insights@example.com")

	w := doJSON(t, r, http.MethodPost, "/meals", token, gin.H{
		"meal_type": "dinner", "name": "Pasta", "calories": 700,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/insights/week", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Days        []struct{ Date string } `json:"days"`
		DaysTracked int                     `json:"days_tracked"`
		AvgCalories float64                 `json:"avg_calories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 1, out.DaysTracked)
	assert.Len(t, out.Days, 1)
	assert.Equal(t, 700.0, out.AvgCalories)

	w = doJSON(t, r, http.MethodGet, "/insights/week?days=60", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
