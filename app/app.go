// File: app/app.go
package app

import (
	"context"
	"go-user-api/common"
	"go-user-api/config"
	"go-user-api/handler"
	"go-user-api/logger"
	"go-user-api/mediator"
	"go-user-api/model"
	"go-user-api/repository"
	"go-user-api/router"
	"go-user-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// One long-lived repository instance shared by every handler.
	userRepo := repository.NewUserRepository()

	m, err := BuildMediator(userRepo)
	if err != nil {
		logger.Log.Fatalf("Error wiring the mediator: %v", err)
	}

	userHandler := handler.NewUserHandler(m)
	r := router.NewRouter(userHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// BuildMediator wires the behavior chain and registers one handler per
// request type. The order of Use calls is the execution order: logging wraps
// everything, validation runs before any handler. Registration errors are
// configuration mistakes and must abort startup.
func BuildMediator(userRepo *repository.UserRepository) (*mediator.Mediator, error) {
	m := mediator.New()

	m.Use(mediator.LoggingBehavior(logger.Log))

	validation := mediator.NewValidationBehavior()
	mediator.RegisterValidator[*model.CreateUserCommand](validation, common.NewStructValidator("CreateUserValidator"))
	m.Use(validation.Behavior())

	if err := mediator.RegisterHandler[*model.CreateUserCommand](m, service.NewCreateUserHandler(userRepo)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*model.GetUserQuery](m, service.NewGetUserHandler(userRepo)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*model.ListUsersQuery](m, service.NewListUsersHandler(userRepo)); err != nil {
		return nil, err
	}
	if err := mediator.RegisterHandler[*model.DeleteUserCommand](m, service.NewDeleteUserHandler(userRepo)); err != nil {
		return nil, err
	}

	return m, nil
}
