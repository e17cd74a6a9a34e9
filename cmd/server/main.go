package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adaskevich/tasktracker/internal/config"
	"github.com/adaskevich/tasktracker/internal/constants"
	"github.com/adaskevich/tasktracker/internal/database"
	"github.com/adaskevich/tasktracker/internal/handlers"
	"github.com/adaskevich/tasktracker/internal/middleware"
	"github.com/adaskevich/tasktracker/internal/notify"
	"github.com/adaskevich/tasktracker/internal/repository"
	"github.com/adaskevich/tasktracker/internal/services"
	"github.com/adaskevich/tasktracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.Seed(database.GetDB()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed initial data")
	}

	// Repositories and services
	roleRepo := repository.NewRoleRepository(database.GetDB())
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())

	normalizer := services.NewNormalizer(constants.TaskStatuses, constants.TaskPriorityLabels)
	authService := services.NewAuthService(
		userRepo, roleRepo, constants.RoleNames,
		cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireMinutes)*time.Minute)
	taskService := services.NewTaskService(taskRepo, userRepo, normalizer, constants.AssignableRoles)

	// Notification dispatcher
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mailer := notify.NewSMTPMailer(cfg.Mail, log)
	dispatcher := notify.NewDispatcher(mailer, 0, log)
	dispatcher.Start(ctx)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService, dispatcher)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/jwt/login", authHandler.Login)
		}

		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.GET("/details", middleware.RequireAuth(cfg.JWT.Secret), userHandler.Details)
		}

		task := api.Group("/task")
		task.Use(middleware.RequireAuth(cfg.JWT.Secret))
		{
			task.POST("/create",
				middleware.RequireRoles(constants.RoleOwner, constants.RoleAdmin, constants.RoleProjectManager),
				taskHandler.Create)
			task.PUT("/edit",
				middleware.RequireRoles(constants.RoleOwner, constants.RoleAdmin, constants.RoleProjectManager),
				taskHandler.Edit)
			task.PATCH("/change_task_status",
				middleware.RequireRoles(constants.RoleAdmin, constants.RoleProjectManager, constants.RoleDeveloper),
				taskHandler.ChangeStatus)
			task.DELETE("/remove",
				middleware.RequireRoles(constants.RoleOwner, constants.RoleAdmin, constants.RoleProjectManager),
				taskHandler.Remove)
			task.GET("/retrieve", taskHandler.List)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
