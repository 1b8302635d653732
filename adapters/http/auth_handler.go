package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "devconnect/internal/application/usecase/auth"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type AuthHandler struct {
	registerUseCase    *authUC.RegisterUseCase
	loginUseCase       *authUC.LoginUseCase
	currentUserUseCase *authUC.CurrentUserUseCase
	logger             logger.Logger
}

func NewAuthHandler(register *authUC.RegisterUseCase, login *authUC.LoginUseCase, current *authUC.CurrentUserUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		registerUseCase:    register,
		loginUseCase:       login,
		currentUserUseCase: current,
		logger:             log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for registration", err))
		return
	}

	input := authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	output, err := h.registerUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: output.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	input := authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: output.AccessToken})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.currentUserUseCase.Execute(c.Request.Context(), authUC.CurrentUserInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(output.User))
}
