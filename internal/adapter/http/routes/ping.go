package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "CTL Flight Price Service",
			"status":    "running",
			"endpoints": []string{"/health", "/api/getFlightPrice"},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "flight-price-api",
		})
	})
}
