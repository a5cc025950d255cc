package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campuscoffee/pkg/logger"
	"campuscoffee/pkg/metrics"
)

// SetupRoutes настраивает маршруты POS Service.
// GET эндпоинты публичные: GET /pos/:pos_id используется Reviews Service
// без пользовательского токена. Запись требует JWT
func SetupRoutes(posHandler *PosHandler, authMiddleware *AuthMiddleware) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware("pos-service"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pos-service",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pos := router.Group("/pos")
	{
		pos.GET("", posHandler.GetAllPos)
		pos.GET("/:pos_id", posHandler.GetPos)

		pos.POST("", authMiddleware.Authenticate(), posHandler.CreatePos)
		pos.PUT("/:pos_id", authMiddleware.Authenticate(), posHandler.UpdatePos)
		pos.DELETE("/:pos_id", authMiddleware.Authenticate(), posHandler.DeletePos)
	}

	return router
}
