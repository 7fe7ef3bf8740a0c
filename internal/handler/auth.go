package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/david-morgenstern/thundervarg/internal/model"
	"github.com/david-morgenstern/thundervarg/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Token godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Login name"
// @Param password formData string true "Password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req model.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Private godoc
// @Summary Echo the presented bearer token
// @Description Diagnostic endpoint; accepts any valid token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PrivateResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /private [get]
func (h *AuthHandler) Private(c *gin.Context) {
	c.JSON(http.StatusOK, model.PrivateResponse{Token: GetAuthToken(c)})
}

// Me godoc
// @Summary Get the authenticated user
// @Description Rejects disabled accounts with 403.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	subject := GetAuthSubject(c)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.svc.IdentifyActive(c.Request.Context(), subject)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
