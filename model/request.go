// file: model/request.go

package model

// CreateUserCommand asks for a new user to be stored. It includes validation
// tags to ensure data integrity at the entry point; the dispatch pipeline
// runs them before the handler is ever invoked.
type CreateUserCommand struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
}

// GetUserQuery fetches a single user by id.
type GetUserQuery struct {
	ID int `json:"id"`
}

// ListUsersQuery fetches every stored user, ordered by id.
type ListUsersQuery struct{}

// DeleteUserCommand removes the user with the given id, if present.
type DeleteUserCommand struct {
	ID int `json:"id"`
}
