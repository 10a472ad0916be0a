package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/DevLink/internal/api/response"
	"github.com/leon37/DevLink/internal/infrastructure/github"
	"github.com/leon37/DevLink/internal/service"
)

// ProfileController 档案相关的全部路由，包括 GitHub 仓库代理
type ProfileController struct {
	profileService *service.ProfileService
	authService    *service.AuthService
	githubClient   *github.Client
}

func NewProfileController(profileService *service.ProfileService, authService *service.AuthService, githubClient *github.Client) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		authService:    authService,
		githubClient:   githubClient,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type ProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         *string `json:"status" binding:"required"`
	Skills         *string `json:"skills" binding:"required"` // 逗号分隔
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

type ExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"fieldofstudy" binding:"required"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// ==========================================
// Handlers
// ==========================================

// Me 当前用户的档案
// @route   GET /api/profile/me
// @access  Private
func (ctrl *ProfileController) Me(c *gin.Context) {
	profile, err := ctrl.profileService.Me(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// Upsert 创建或更新当前用户的档案
// @route   POST /api/profile
// @access  Private
func (ctrl *ProfileController) Upsert(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile params invalid", "err", err)
		response.ValidationError(c, violatedFields(err))
		return
	}

	profile, err := ctrl.profileService.Upsert(c.Request.Context(), c.GetString("userID"), service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// List 所有人的档案
// @route   GET /api/profile
// @access  Public
func (ctrl *ProfileController) List(c *gin.Context) {
	profiles, err := ctrl.profileService.List(c.Request.Context())
	if err != nil {
		slog.Error("list profiles failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}
	response.Success(c, profiles)
}

// ByUser 按用户 ID 查档案
// @route   GET /api/profile/user/:userId
// @access  Public
func (ctrl *ProfileController) ByUser(c *gin.Context) {
	profile, err := ctrl.profileService.ByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// Delete 注销账号：档案、用户、帖子级联删除
// @route   DELETE /api/profile
// @access  Private
func (ctrl *ProfileController) Delete(c *gin.Context) {
	if err := ctrl.authService.DeleteAccount(c.Request.Context(), c.GetString("userID")); err != nil {
		slog.Error("delete account failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}
	response.Success(c, gin.H{"msg": "User deleted"})
}

// AddExperience 新增工作经历（头插）
// @route   PUT /api/profile/experience
// @access  Private
func (ctrl *ProfileController) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, violatedFields(err))
		return
	}

	profile, err := ctrl.profileService.AddExperience(c.Request.Context(), c.GetString("userID"), service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// RemoveExperience 按条目 id 删除工作经历
// @route   DELETE /api/profile/experience/:id
// @access  Private
func (ctrl *ProfileController) RemoveExperience(c *gin.Context) {
	profile, err := ctrl.profileService.RemoveExperience(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// AddEducation 新增教育经历（头插）
// @route   PUT /api/profile/education
// @access  Private
func (ctrl *ProfileController) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, violatedFields(err))
		return
	}

	profile, err := ctrl.profileService.AddEducation(c.Request.Context(), c.GetString("userID"), service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// RemoveEducation 按条目 id 删除教育经历
// @route   DELETE /api/profile/education/:id
// @access  Private
func (ctrl *ProfileController) RemoveEducation(c *gin.Context) {
	profile, err := ctrl.profileService.RemoveEducation(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		ctrl.profileError(c, err)
		return
	}
	response.Success(c, profile)
}

// Github 代理 GitHub 最近 5 个仓库
// @route   GET /api/profile/github/:username
// @access  Public
func (ctrl *ProfileController) Github(c *gin.Context) {
	repos, err := ctrl.githubClient.ListRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "No github profile found")
			return
		}
		slog.Error("github proxy failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}
	response.Success(c, repos)
}

// profileError 档案类接口统一的错误映射
func (ctrl *ProfileController) profileError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		response.Error(c, http.StatusNotFound, "该用户还没有档案")
		return
	}
	slog.Error("profile operation failed", "err", err)
	response.Error(c, http.StatusInternalServerError, "服务器内部错误")
}
