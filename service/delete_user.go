package service

import (
	"context"
	"fmt"

	"go-user-api/mediator"
	"go-user-api/model"
)

// DeleteUserHandler handles DeleteUserCommand.
type DeleteUserHandler struct {
	repo UserRepository
}

func NewDeleteUserHandler(repo UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle removes the user if present. The command has no meaningful result,
// so a successful dispatch returns a nil response.
func (h *DeleteUserHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*model.DeleteUserCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	if err := h.repo.DeleteUser(cmd.ID); err != nil {
		return nil, err
	}

	return nil, nil
}
