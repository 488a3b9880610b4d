package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Daily analytics
// @Description Frequent places, active incidents near them and today's travel peak
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DailyAnalyticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /analytics/daily [get]
func (h *Handler) dailyAnalytics(c *gin.Context) {
	user := currentUser(c)

	daily, err := h.analytics.Daily(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "dailyAnalytics"), err)
		return
	}
	c.JSON(http.StatusOK, DailyAnalyticsToResponse(daily))
}

// @Summary Peak hours
// @Description Incidents per hour over 30 days, normal days vs event days
// @Tags Analytics
// @Produce json
// @Success 200 {object} PeakHoursResponse
// @Router /analytics/peak-hours [get]
func (h *Handler) peakHours(c *gin.Context) {
	peaks, err := h.analytics.PeakHours(c.Request.Context())
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "peakHours"), err)
		return
	}
	c.JSON(http.StatusOK, PeakHoursResponse{NormalDays: peaks.NormalDays, EventDays: peaks.EventDays})
}

// @Summary Personalized analytics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PersonalAnalyticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /analytics/personalized [get]
func (h *Handler) personalAnalytics(c *gin.Context) {
	user := currentUser(c)

	personal, err := h.analytics.Personalized(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "personalAnalytics"), err)
		return
	}
	c.JSON(http.StatusOK, PersonalAnalyticsToResponse(personal))
}

// @Summary Destination prediction
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DestinationPredictionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /analytics/predictions [get]
func (h *Handler) destinationPrediction(c *gin.Context) {
	user := currentUser(c)

	prediction, err := h.analytics.PredictDestination(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "destinationPrediction"), err)
		return
	}
	c.JSON(http.StatusOK, DestinationPredictionToResponse(prediction))
}
