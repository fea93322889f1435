package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose health can be checked, the Redis store in practice.
type Pinger interface {
	Ping(ctx context.Context) error
}

// @Summary Endpoint just pings the server
// @Description Returns a basic message, or 503 when Redis does not answer
// @Tags test
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 503 {object} object{error=string}
// @Router /ping [get]
func Ping(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}
