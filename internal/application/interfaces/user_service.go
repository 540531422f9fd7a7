package interfaces

import (
	"context"

	"school-backend/internal/application/command"
	"school-backend/internal/application/query"
)

type UserService interface {
	CreateUser(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	FindUserByID(ctx context.Context, id uint) (*query.UserQueryResult, error)
	ListUsers(ctx context.Context, offset, limit int) (*query.UserListQueryResult, error)
	UpdateUser(ctx context.Context, id uint, updateCommand *command.UpdateUserCommand) (*command.UpdateUserCommandResult, error)
	DeleteUser(ctx context.Context, id uint) error
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}
