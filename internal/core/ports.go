package core

import (
	"context"
	"usersvc/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	ListUsers(ctx context.Context) ([]repository.User, error)
	GetUserByID(ctx context.Context, id int64) (repository.User, error)
	CreateUser(ctx context.Context, username, password, email string) (repository.User, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}
