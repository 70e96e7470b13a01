package handler

import (
	"context"
	"net/http"
	"usersvc/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
	GetUser(ctx context.Context, id int64) (core.UserRecord, error)
	CreateUser(ctx context.Context, msg core.NewUserMessage) (core.UserRecord, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, jsonPayload any) error
}
