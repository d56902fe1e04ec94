package service

import (
	"context"
	"fmt"

	"go-user-api/mediator"
	"go-user-api/model"
)

// GetUserHandler handles GetUserQuery.
type GetUserHandler struct {
	repo UserRepository
}

func NewGetUserHandler(repo UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle looks up a single user. A missing id surfaces the repository's
// not-found error unchanged so the boundary layer can map it.
func (h *GetUserHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*model.GetUserQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	user, err := h.repo.GetUser(query.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
