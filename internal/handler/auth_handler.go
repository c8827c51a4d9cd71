package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/middleware"
	"github.com/rnqayush/storefront-platform/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler. The issued token is returned in
// the body and also set as a cookie so browser storefronts authenticate
// without holding the token in script.
func NewAuthHandler(authService service.AuthService, cookieName string, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeEmailTaken, "An account with this email already exists"))
			return
		}
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, result.Token)
	c.JSON(http.StatusCreated, response.Success(result))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Error(response.ErrCodeInvalidCredentials, "Invalid email or password"))
			return
		}
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, result.Token)
	c.JSON(http.StatusOK, response.Success(result))
}

// Logout handles POST /auth/logout - clears the auth cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.cookieName != "" {
		c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Logged out"}))
}

// Me handles GET /auth/me - returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	result, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateMe handles PUT /auth/me - updates the authenticated user
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	result, err := h.authService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	if h.cookieName == "" {
		return
	}
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", false, true)
}
