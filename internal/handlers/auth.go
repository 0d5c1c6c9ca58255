package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pritish2005/task-management-app/internal/auth"
	"github.com/Pritish2005/task-management-app/internal/dto"
	"github.com/Pritish2005/task-management-app/internal/service"
)

// AuthHandler handles register and login. Both respond with a bearer token
// on success; the password hash never leaves the service layer.
type AuthHandler struct {
	tokens  *auth.TokenManager
	authSvc *service.AuthService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenManager, authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{tokens: tokens, authSvc: authSvc}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "Name, email and password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: err.Error()})
		return
	}
	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Msg: "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Error creating user"})
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Error creating user"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Email and password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: err.Error()})
		return
	}
	user, err := h.authSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Uniform message: does not reveal whether the email exists.
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Msg: "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Error logging in"})
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Msg: "Error logging in"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
