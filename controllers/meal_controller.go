package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MealController struct {
	Meals     *services.MealService
	Summaries *services.SummaryService
	Hub       *services.RealtimeHub
	Loc       *time.Location
}

func NewMealController(meals *services.MealService, summaries *services.SummaryService, hub *services.RealtimeHub, loc *time.Location) *MealController {
	return &MealController{Meals: meals, Summaries: summaries, Hub: hub, Loc: loc}
}

func (h *MealController) LogMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Meals.LogMeal(c.Request.Context(), userID, input)
	if err != nil {
		var orphan *services.MealOrphanedError
		if errors.As(err, &orphan) {
			// the meal row exists with no items; tell the caller which
			// one so it can be retried or cleaned up
			config.Logger.Warn("meal item write failed after meal create",
				zap.Uint("orphan_meal_id", orphan.MealID), zap.Error(orphan.Err))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":          "meal was created but the item could not be saved",
				"orphan_meal_id": orphan.MealID,
			})
			return
		}
		badRequestOr(c, "meal.log", err)
		return
	}

	if sum, err := h.Summaries.DaySummary(c.Request.Context(), userID, meal.EatenAt, h.Loc); err == nil {
		h.Hub.BroadcastSummary(userID, "summary:meal", sum)
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meals, err := h.Meals.ListMeals(c.Request.Context(), userID)
	if err != nil {
		storeError(c, "meal.list", err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.Meals.GetMeal(c.Request.Context(), userID, uint(mealID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		storeError(c, "meal.get", err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.Meals.DeleteMeal(c.Request.Context(), userID, uint(mealID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		storeError(c, "meal.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
