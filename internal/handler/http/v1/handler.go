package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/config"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - зависимости обработчиков
type Services struct {
	Intake    service.IntakeService
	Incidents service.IncidentService
	Coins     service.CoinService
	Admin     service.AdminService
	Accounts  service.AccountService
	Locations service.LocationService
	Alerts    service.AlertService
	Events    service.EventService
	Analytics service.AnalyticsService
}

type Handler struct {
	intakeService   service.IntakeService
	incidentService service.IncidentService
	coinService     service.CoinService
	adminService    service.AdminService
	accountService  service.AccountService
	locationService service.LocationService
	alertService    service.AlertService
	eventService    service.EventService
	analytics       service.AnalyticsService
	websocket       http.HandlerFunc
	limiter         *RateLimiter
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

// NewHandler собирает обработчики; websocket может быть nil, тогда /ws не регистрируется
func NewHandler(services Services, websocket http.HandlerFunc, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		intakeService:   services.Intake,
		incidentService: services.Incidents,
		coinService:     services.Coins,
		adminService:    services.Admin,
		accountService:  services.Accounts,
		locationService: services.Locations,
		alertService:    services.Alerts,
		eventService:    services.Events,
		analytics:       services.Analytics,
		websocket:       websocket,
		limiter:         NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMaxRequests),
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// RateLimiter - лимитер маршрутов подачи отчётов, main запускает его Cleanup
func (h *Handler) RateLimiter() *RateLimiter {
	return h.limiter
}

// bindAndValidate разбирает JSON тела и проверяет теги validate; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindQuery разбирает параметры строки запроса и проверяет теги validate
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindQuery(input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	var rejection *service.RejectionError
	if errors.As(err, &rejection) {
		if rejection.Kind == service.RejectionLocationMismatch {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          "Location mismatch: you must be near the incident to report it",
				"warning":        true,
				"distanceMeters": rejection.DistanceMeters,
			})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Account suspended due to GPS mismatches or policy violations",
			"banned":    true,
			"banReason": rejection.Reason,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, service.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrUserAlreadyExists.Error()})
	case errors.Is(err, service.ErrAlreadyVerified):
		c.JSON(http.StatusConflict, gin.H{"error": service.ErrAlreadyVerified.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrInsufficientCoins), errors.Is(err, service.ErrBelowMinimumConversion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report an incident
// @Description Submit a traffic incident. The device GPS fix must be near the reported location.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IntakeResponse
// @Failure 400 {object} map[string]any "Invalid body or location mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]any "Banned or not verified"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user := currentUser(c)
	result, err := h.intakeService.Submit(c.Request.Context(), user.ID, DTOToIncidentReport(input))
	if err != nil {
		h.writeError(c, log.WithField("user_id", user.ID), err)
		return
	}
	c.JSON(http.StatusCreated, IntakeResultToResponse(result))
}

// @Summary Get a list of incidents
// @Description Latest incidents, newest first
// @Tags Incidents
// @Produce json
// @Param type query string false "Incident type" Enums(major_accident, heavy_congestion, road_construction)
// @Param verified query bool false "Only verified / unverified"
// @Param status query string false "Status" Enums(active, resolved)
// @Param limit query int false "Max items" default(50)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	filter := models.IncidentFilter{
		Type:   models.IncidentType(c.Query("type")),
		Status: models.IncidentStatus(c.Query("status")),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if v := c.Query("verified"); v != "" {
		verified, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "verified must be a boolean"})
			return
		}
		filter.Verified = &verified
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident statistics
// @Description Counts by type and severity plus distinct reporters in the stats window. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
