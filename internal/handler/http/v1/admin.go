package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// pathID разбирает :id; при ошибке ответ уже записан
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) adminLog(c *gin.Context, method string, target uuid.UUID) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":   method,
		"admin_id": currentUser(c).ID,
		"target":   target,
	})
}

// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items" default(100)
// @Success 200 {array} UserResponse
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.adminService.ListUsers(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "listUsers"), err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary Ban a user
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param ban body BanUserRequest true "Reason"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id}/ban [post]
func (h *Handler) banUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log := h.adminLog(c, "banUser", id)

	var input BanUserRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.adminService.BanUser(c.Request.Context(), currentUser(c).ID, id, input.Reason); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User banned"})
}

// @Summary Unban a user
// @Description Lifts the ban and resets GPS warnings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id}/unban [post]
func (h *Handler) unbanUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.adminService.UnbanUser(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.writeError(c, h.adminLog(c, "unbanUser", id), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unbanned"})
}

// @Summary Verify a user
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param verify body VerifyUserRequest false "Also mark as trusted"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id}/verify [post]
func (h *Handler) verifyUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log := h.adminLog(c, "verifyUser", id)

	// тело необязательно
	var input VerifyUserRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.adminService.VerifyUser(c.Request.Context(), currentUser(c).ID, id, input.Trusted); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User verified"})
}

// @Summary Verify an incident
// @Description Marks the incident verified and awards the reporter the verified-report bonus once
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Already verified"
// @Router /admin/incidents/{id}/verify [post]
func (h *Handler) verifyIncident(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	incident, err := h.adminService.VerifyIncident(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		h.writeError(c, h.adminLog(c, "verifyIncident", id), err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Resolve an incident
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /admin/incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.adminService.ResolveIncident(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.writeError(c, h.adminLog(c, "resolveIncident", id), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Incident resolved"})
}
