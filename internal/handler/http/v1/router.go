package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	authenticated := AuthMiddleware(h.accountService, h.logger)
	limited := h.limiter.Middleware(h.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", authenticated, h.me)
	}

	incidents := api.Group("/incidents")
	{
		incidents.POST("", limited, authenticated, RequireVerified(), h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)
		incidents.GET("/:id", h.getIncident)
	}

	// тот же приём отчёта без требования подтверждённого аккаунта
	api.POST("/reports", limited, authenticated, h.createIncident)

	coins := api.Group("/coins", authenticated)
	{
		coins.GET("/balance", h.coinBalance)
		coins.GET("/transactions", h.coinTransactions)
		coins.POST("/convert", h.convertCoins)
	}

	admin := api.Group("/admin", authenticated, RequireAdmin())
	{
		admin.GET("/users", h.listUsers)
		admin.POST("/users/:id/ban", h.banUser)
		admin.POST("/users/:id/unban", h.unbanUser)
		admin.POST("/users/:id/verify", h.verifyUser)
		admin.POST("/incidents/:id/verify", h.verifyIncident)
		admin.POST("/incidents/:id/resolve", h.resolveIncident)
	}

	locations := api.Group("/locations", authenticated)
	{
		locations.POST("/track", h.trackLocation)
		locations.GET("/history", h.locationHistory)
		locations.GET("/search-history", h.searchHistory)
		locations.GET("/predictions", h.routePrediction)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", OptionalAuthMiddleware(h.accountService, h.logger), h.nearbyAlerts)
		alerts.PUT("/:id/read", authenticated, h.markAlertRead)
	}

	events := api.Group("/events")
	{
		events.GET("", h.listEvents)
		events.GET("/:date", h.eventSchedule)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/daily", authenticated, h.dailyAnalytics)
		analytics.GET("/peak-hours", h.peakHours)
		analytics.GET("/personalized", authenticated, h.personalAnalytics)
		analytics.GET("/predictions", authenticated, h.destinationPrediction)
	}

	if h.websocket != nil {
		api.GET("/ws", gin.WrapF(h.websocket))
	}

	api.GET("/system/health", h.healthCheck)
}
