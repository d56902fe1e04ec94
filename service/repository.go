package service

import "go-user-api/model"

// UserRepository abstracts the storage collaborator the request handlers
// depend on. The concrete in-memory implementation lives in the repository
// package; tests substitute a mock.
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUser(id int) (*model.User, error)
	GetAllUsers() ([]*model.User, error)
	DeleteUser(id int) error
}
