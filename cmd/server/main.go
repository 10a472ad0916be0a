package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/leon37/DevLink/internal/api"
	"github.com/leon37/DevLink/internal/api/controller"
	"github.com/leon37/DevLink/internal/config"
	"github.com/leon37/DevLink/internal/infrastructure/database"
	"github.com/leon37/DevLink/internal/infrastructure/github"
	"github.com/leon37/DevLink/internal/repository"
	"github.com/leon37/DevLink/internal/service"
)

func main() {
	// 1. 初始化 Logger
	// JSONHandler 方便日志采集，AddSource 会带上文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug, // 生产环境改为 Info
	}))
	slog.SetDefault(logger)

	slog.Info("DevLink 系统启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	log.Println("配置加载成功")

	// 2. Infra Initialization
	db := database.NewMongoDatabase(conf.Database.URI, conf.Database.Name) // 这里会自动建索引
	ghClient := github.NewClient(conf.GitHub.BaseURL, conf.GitHub.ClientID, conf.GitHub.ClientSecret)

	if conf.Server.Port != ":5000" { // 简单的判断，生产环境建议用配置字段
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	tokenSvc := service.NewTokenService(conf.JWT.Secret, conf.JWT.ExpireHours)
	authSvc := service.NewAuthService(userRepo, profileRepo, postRepo, tokenSvc)
	profileSvc := service.NewProfileService(profileRepo, userRepo)

	authController := controller.NewAuthController(authSvc)
	profileController := controller.NewProfileController(profileSvc, authSvc, ghClient)

	// 4. Server Start
	r := gin.Default()
	api.RegisterRoutes(r, tokenSvc, authController, profileController)

	slog.Info("DevLink Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
