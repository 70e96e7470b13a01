package repository

import (
	"context"
	"usersvc/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	db.Querier
	Transaction(ctx context.Context, fn func(tx db.Querier) error) error
}
