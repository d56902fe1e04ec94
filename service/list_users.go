package service

import (
	"context"
	"fmt"

	"go-user-api/mediator"
	"go-user-api/model"
)

// ListUsersHandler handles ListUsersQuery.
type ListUsersHandler struct {
	repo UserRepository
}

func NewListUsersHandler(repo UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

func (h *ListUsersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*model.ListUsersQuery); !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	users, err := h.repo.GetAllUsers()
	if err != nil {
		return nil, err
	}

	return users, nil
}
