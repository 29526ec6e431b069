package http

import (
	"errors"
	"net/http"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionCookie describes the cookie that carries the admin session token.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookie      SessionCookie
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookie SessionCookie, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookie:      cookie,
		logger:      logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	Admin *entity.Admin `json:"admin"`
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticates an admin. The session token is set as an HTTP-only cookie and returned in the body.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		respondError(c, h.logger, "log in", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		Admin: admin,
	})
}

// Logout godoc
// @Summary      Admin logout
// @Description  Clears the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// RequireActiveAdmin runs after the session middleware and rejects tokens whose admin
// has since been deactivated or removed.
func (h *AuthHandler) RequireActiveAdmin(c *gin.Context) {
	if _, err := h.authUseCase.GetAdmin(requestContext(c)); err != nil {
		respondError(c, h.logger, "verify admin", err)
		c.Abort()
		return
	}
	c.Next()
}

// Me godoc
// @Summary      Current admin
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Admin
// @Failure      401  {object}  map[string]string
// @Router       /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	admin, err := h.authUseCase.GetAdmin(requestContext(c))
	if err != nil {
		respondError(c, h.logger, "load admin", err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// ChangePassword godoc
// @Summary      Change admin password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Current and new password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUseCase.ChangePassword(requestContext(c), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, "change password", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
