package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// requestLocation resolves the day-boundary zone for summary reads: the
// optional ?tz= IANA name wins, otherwise the server's configured zone.
func requestLocation(c *gin.Context, fallback *time.Location) (*time.Location, error) {
	name := c.Query("tz")
	if name == "" {
		return fallback, nil
	}
	return time.LoadLocation(name)
}

// storeError logs the underlying cause for diagnostics and returns a
// generic notification to the user.
func storeError(c *gin.Context, op string, err error) {
	config.Logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
}

// badRequestOr maps validation errors to 400 and everything else to the
// generic store failure.
func badRequestOr(c *gin.Context, op string, err error) {
	if errors.Is(err, services.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	storeError(c, op, err)
}
