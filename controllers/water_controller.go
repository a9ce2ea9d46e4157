package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Water     *services.WaterService
	Summaries *services.SummaryService
	Hub       *services.RealtimeHub
	Loc       *time.Location
}

func NewWaterController(water *services.WaterService, summaries *services.SummaryService, hub *services.RealtimeHub, loc *time.Location) *WaterController {
	return &WaterController{Water: water, Summaries: summaries, Hub: hub, Loc: loc}
}

func (h *WaterController) AddWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		AmountMl float64   `json:"amount_ml"`
		LoggedAt time.Time `json:"logged_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Water.Add(c.Request.Context(), userID, body.AmountMl, body.LoggedAt)
	if err != nil {
		badRequestOr(c, "water.add", err)
		return
	}

	// echo the patched day total so the client can update in place
	total, err := h.Water.DayTotal(c.Request.Context(), userID, log.LoggedAt, h.Loc)
	if err != nil {
		storeError(c, "water.total", err)
		return
	}

	if sum, err := h.Summaries.DaySummary(c.Request.Context(), userID, log.LoggedAt, h.Loc); err == nil {
		h.Hub.BroadcastSummary(userID, "summary:water", sum)
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           log.ID,
		"amount_ml":    log.AmountMl,
		"logged_at":    log.LoggedAt,
		"day_total_ml": total,
	})
}

func (h *WaterController) ListWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	loc, err := requestLocation(c, h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tz"})
		return
	}

	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	logs, err := h.Water.ListByDateRange(c.Request.Context(), userID, from, from.Add(24*time.Hour))
	if err != nil {
		storeError(c, "water.list", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
