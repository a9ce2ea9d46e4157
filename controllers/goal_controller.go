// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (h *GoalController) GetGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, err := h.Goals.GetActive(c.Request.Context(), userID)
	if err != nil {
		storeError(c, "goals.get", err)
		return
	}

	if goals == nil {
		def := services.DefaultGoals()
		c.JSON(http.StatusOK, gin.H{"goals": def, "using_defaults": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals, "using_defaults": false})
}

func (h *GoalController) UpdateGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := h.Goals.Upsert(c.Request.Context(), userID, input)
	if err != nil {
		badRequestOr(c, "goals.upsert", err)
		return
	}
	c.JSON(http.StatusOK, goals)
}
