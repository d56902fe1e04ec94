package service

import (
	"context"
	"fmt"

	"go-user-api/mediator"
	"go-user-api/model"
)

// CreateUserHandler handles CreateUserCommand.
type CreateUserHandler struct {
	repo UserRepository
}

func NewCreateUserHandler(repo UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle stores a new user and returns it with its assigned id. Field
// validation already happened in the dispatch pipeline; the command is
// trusted here.
func (h *CreateUserHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*model.CreateUserCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	user := &model.User{
		Name:  cmd.Name,
		Email: cmd.Email,
	}
	if err := h.repo.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}
