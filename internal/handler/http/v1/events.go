package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary List events
// @Description All city events, or those between startDate and endDate inclusive
// @Tags Events
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listEvents")

	start, end := c.Query("startDate"), c.Query("endDate")
	if (start == "") != (end == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be given together"})
		return
	}

	var from, to time.Time
	if start != "" {
		var err error
		if from, err = time.Parse(time.DateOnly, start); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		if to, err = time.Parse(time.DateOnly, end); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
			return
		}
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate is before startDate"})
			return
		}
	}

	events, err := h.eventService.List(c.Request.Context(), from, to)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Events and road closures for a date
// @Tags Events
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /events/{date} [get]
func (h *Handler) eventSchedule(c *gin.Context) {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	log := h.logger.WithField("method", "eventSchedule").WithField("date", c.Param("date"))

	schedule, err := h.eventService.Schedule(c.Request.Context(), date)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ScheduleToResponse(schedule))
}
