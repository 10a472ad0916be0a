package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/DevLink/internal/api/response"
	"github.com/leon37/DevLink/internal/service"
)

// AuthController 处理注册/登录/当前用户
type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ==========================================
// Handlers
// ==========================================

// Register 用户注册
// @route   POST /api/users
// @access  Public
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register params invalid", "err", err)
		response.ValidationError(c, violatedFields(err))
		return
	}

	token, err := ctrl.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, "该邮箱已被注册")
			return
		}
		slog.Error("register failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	slog.Info("user registered", "email", req.Email)
	response.Success(c, TokenResponse{Token: token})
}

// Login 用户登录
// @route   POST /api/auth
// @access  Public
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, violatedFields(err))
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// 提示信息模糊化，防止撞库探测
			response.Error(c, http.StatusBadRequest, "账号或密码错误")
			return
		}
		slog.Error("login failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	slog.Info("user logged in", "email", req.Email)
	response.Success(c, TokenResponse{Token: token})
}

// Me 返回当前登录用户（不含密码）
// @route   GET /api/auth
// @access  Private
func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.authService.CurrentUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "用户不存在")
			return
		}
		slog.Error("load current user failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	response.Success(c, user)
}
