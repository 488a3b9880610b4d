package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/geo"
)

// @Summary Nearby alerts
// @Description Active incidents within the radius; signed-in users also get their unread alerts
// @Tags Alerts
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query number false "Radius in meters" default(5000)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Router /alerts [get]
func (h *Handler) nearbyAlerts(c *gin.Context) {
	var query AlertsQuery
	log := h.logger.WithField("method", "nearbyAlerts")

	if !h.bindQuery(c, log, &query) {
		return
	}

	var userID *uuid.UUID
	if user := currentUser(c); user != nil {
		userID = &user.ID
	}

	at := geo.Coordinate{Latitude: *query.Latitude, Longitude: *query.Longitude}
	alerts, err := h.alertService.Nearby(c.Request.Context(), userID, at, query.Radius)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Mark alert as read
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} map[string]string "Alert marked as read"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/read [put]
func (h *Handler) markAlertRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	user := currentUser(c)
	log := h.logger.WithField("method", "markAlertRead").WithField("alert_id", id)

	if err := h.alertService.MarkRead(c.Request.Context(), user.ID, id); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}
