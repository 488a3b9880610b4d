package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/etraffic/internal/service"
)

// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email or username taken"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), service.RegisterInput{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
		FullName: input.FullName,
	})
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 403 {object} map[string]any "Account banned"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.accountService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      ModelToUserResponse(result.User),
	})
}

// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	user, err := h.accountService.Me(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.writeError(c, h.logger.WithField("method", "me"), err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}
