package api

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/DevLink/internal/api/controller"
	"github.com/leon37/DevLink/internal/api/middleware"
	"github.com/leon37/DevLink/internal/service"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, tokens *service.TokenService, authCtrl *controller.AuthController, profileCtrl *controller.ProfileController) {
	r.Use(middleware.Cors())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := middleware.JWTAuth(tokens)

	users := r.Group("/api/users")
	{
		users.POST("", authCtrl.Register)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("", authCtrl.Login)
		auth.GET("", authed, authCtrl.Me)
	}

	profile := r.Group("/api/profile")
	{
		// 公开
		profile.GET("", profileCtrl.List)
		profile.GET("/user/:userId", profileCtrl.ByUser)
		profile.GET("/github/:username", profileCtrl.Github)

		// 需要登录
		profile.GET("/me", authed, profileCtrl.Me)
		profile.POST("", authed, profileCtrl.Upsert)
		profile.DELETE("", authed, profileCtrl.Delete)
		profile.PUT("/experience", authed, profileCtrl.AddExperience)
		profile.DELETE("/experience/:id", authed, profileCtrl.RemoveExperience)
		profile.PUT("/education", authed, profileCtrl.AddEducation)
		profile.DELETE("/education/:id", authed, profileCtrl.RemoveEducation)
	}
}
