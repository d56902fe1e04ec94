package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"go-user-api/common"
	"go-user-api/logger"
	"go-user-api/mediator"
	"go-user-api/model"
	"go-user-api/repository"
)

// UserHandler is pure transport glue: it decodes the wire format into
// request values, sends them through the mediator and maps core errors to
// HTTP responses.
type UserHandler struct {
	mediator *mediator.Mediator
}

func NewUserHandler(m *mediator.Mediator) *UserHandler {
	return &UserHandler{mediator: m}
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Stores a new user and returns it with its assigned id
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      model.CreateUserCommand  true  "User to create"
// @Success      201   {object}  model.User
// @Failure      400   {object}  common.AppError
// @Router       /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	var cmd model.CreateUserCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"name":  cmd.Name,
		"email": cmd.Email,
	}).Info("Create user request received")

	result, err := h.mediator.Send(r.Context(), &cmd)
	if err != nil {
		return mapDispatchError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
	return nil
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns every stored user ordered by id
// @Tags         users
// @Produce      json
// @Success      200  {array}  model.User
// @Router       /users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	result, err := h.mediator.Send(r.Context(), &model.ListUsersQuery{})
	if err != nil {
		return mapDispatchError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}

// GetUser godoc
// @Summary      Get a user
// @Description  Returns the user with the given id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  model.User
// @Failure      404  {object}  common.AppError
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	result, err := h.mediator.Send(r.Context(), &model.GetUserQuery{ID: id})
	if err != nil {
		return mapDispatchError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes the user with the given id, if present
// @Tags         users
// @Param        id  path  int  true  "User id"
// @Success      204
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithField("user_id", id).Info("Delete user request received")

	if _, err := h.mediator.Send(r.Context(), &model.DeleteUserCommand{ID: id}); err != nil {
		return mapDispatchError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func pathID(r *http.Request) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid user id", err)
	}
	return id, nil
}

// mapDispatchError converts core dispatch errors into transport responses.
// The core never decides presentation; this is the only place that mapping
// happens.
func mapDispatchError(err error) *common.AppError {
	var validationErr *mediator.ValidationError
	if errors.As(err, &validationErr) {
		return common.NewValidationAppError(validationErr)
	}

	if errors.Is(err, repository.ErrUserNotFound) {
		return common.NewAppError(http.StatusNotFound, "User not found", nil)
	}

	return common.NewAppError(http.StatusInternalServerError, "Could not process request", err)
}
