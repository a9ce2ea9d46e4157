// controllers/summary_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Summaries *services.SummaryService
	Goals     *services.GoalService
	Loc       *time.Location
}

func NewSummaryController(summaries *services.SummaryService, goals *services.GoalService, loc *time.Location) *SummaryController {
	return &SummaryController{Summaries: summaries, Goals: goals, Loc: loc}
}

// GetToday serves the dashboard: today's rollup plus percent-of-goal per
// metric. With no goals configured the comparison uses display defaults
// and says so; nothing is written.
func (h *SummaryController) GetToday(c *gin.Context) {
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

	date := time.Now()
	if v := c.Query("date"); v != "" {
		date, err = time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	sum, err := h.Summaries.DaySummary(c.Request.Context(), userID, date, loc)
	if err != nil {
		storeError(c, "summary.day", err)
		return
	}

	goals, err := h.Goals.GetActive(c.Request.Context(), userID)
	if err != nil {
		storeError(c, "goals.get", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  sum,
		"progress": h.Goals.Compare(sum, goals),
	})
}

// GetWeekInsights serves the trailing-window breakdown: observed days
// most recent first, per-metric averages and the days-tracked count.
func (h *SummaryController) GetWeekInsights(c *gin.Context) {
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

	days := 7
	if v := c.Query("days"); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil || days < 1 || days > 31 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 31"})
			return
		}
	}

	out, err := h.Summaries.Range(c.Request.Context(), userID, days, time.Now(), loc)
	if err != nil {
		storeError(c, "summary.range", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
