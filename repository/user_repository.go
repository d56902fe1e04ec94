package repository

import (
	"errors"
	"sort"
	"time"

	"go-user-api/model"
)

// ErrUserNotFound is returned when no user exists for the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores users in a plain in-memory map. A single long-lived
// instance is shared by every handler.
//
// NOT safe for concurrent mutation: there is no locking, and concurrent
// creates or deletes can race. This is an accepted limitation of the
// reference collaborator, not of the dispatch core.
type UserRepository struct {
	users  map[int]*model.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*model.User),
		nextID: 1,
	}
}

// CreateUser assigns the next id and stores the user. Ids increase
// monotonically and are never reused, even after the highest-id user is
// deleted.
func (r *UserRepository) CreateUser(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *UserRepository) GetUser(id int) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetAllUsers returns every user ordered by ascending id.
func (r *UserRepository) GetAllUsers() ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// DeleteUser removes the user if present. Deleting an unknown id is a no-op.
func (r *UserRepository) DeleteUser(id int) error {
	delete(r.users, id)
	return nil
}
