package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
)

// @Summary Track a location
// @Description Record a searched place or a trip start/end. Repeated names increment the search count.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body TrackLocationRequest true "Location"
// @Success 200 {object} TrackLocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /locations/track [post]
func (h *Handler) trackLocation(c *gin.Context) {
	var input TrackLocationRequest
	user := currentUser(c)
	log := h.logger.WithField("method", "trackLocation").WithField("user_id", user.ID)

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.locationService.Track(c.Request.Context(), user.ID, service.TrackInput{
		Name:     input.LocationName,
		Type:     models.LocationType(input.LocationType),
		Location: geo.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude},
	})
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	message := "Location tracked"
	if result.Updated {
		message = "Location updated"
	}
	c.JSON(http.StatusOK, TrackLocationResponse{Message: message, LocationID: result.LocationID})
}

// @Summary Location history
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /locations/history [get]
func (h *Handler) locationHistory(c *gin.Context) {
	user := currentUser(c)

	locations, err := h.locationService.History(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "locationHistory"), err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Trip history
// @Description Recent trips with estimated travel time and active incidents near either end
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TripResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /locations/search-history [get]
func (h *Handler) searchHistory(c *gin.Context) {
	user := currentUser(c)

	trips, err := h.locationService.SearchHistory(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "searchHistory"), err)
		return
	}
	c.JSON(http.StatusOK, TripSummariesToResponses(trips))
}

// @Summary Route prediction
// @Description Predicts the next trip from routes repeated on this weekday
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PredictionEnvelope
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /locations/predictions [get]
func (h *Handler) routePrediction(c *gin.Context) {
	user := currentUser(c)

	prediction, err := h.locationService.Predict(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "routePrediction"), err)
		return
	}
	if prediction == nil {
		c.JSON(http.StatusOK, PredictionEnvelope{Message: service.NoTravelHistoryMessage})
		return
	}
	c.JSON(http.StatusOK, PredictionEnvelope{
		Prediction: RoutePredictionToResponse(prediction),
		Message:    prediction.Message,
	})
}
