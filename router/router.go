package router

import (
	"go-user-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-user-api/docs"
)

func NewRouter(userHandler *handler.UserHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.Handle("POST /users", handler.ErrorHandlingMiddleware(userHandler.CreateUser))
	mux.Handle("GET /users", handler.ErrorHandlingMiddleware(userHandler.ListUsers))
	mux.Handle("GET /users/{id}", handler.ErrorHandlingMiddleware(userHandler.GetUser))
	mux.Handle("DELETE /users/{id}", handler.ErrorHandlingMiddleware(userHandler.DeleteUser))

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return handler.RequestIDMiddleware(mux)
}
