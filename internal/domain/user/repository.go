package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	UpdateProfile(ctx context.Context, id, name string, picture *string) (User, error)
	UpdateRole(ctx context.Context, id string, role Role) (User, error)
	Delete(ctx context.Context, id string) error
}

// UserService - operations exposed to the HTTP layer
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (User, error)
	Delete(ctx context.Context, actorID, targetID string) error
}
