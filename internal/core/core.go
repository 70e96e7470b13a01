package core

import (
	"context"
	"errors"
	"fmt"
	"usersvc/internal/repository"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrAmbiguousUser error = errors.New("user id is ambiguous")

// UserService exposes the users table to the HTTP layer.
type UserService struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewUserService is a constructor function for the UserService type.
func NewUserService(logger *zap.SugaredLogger, repo Repository) *UserService {
	return &UserService{
		logs: logger,
		repo: repo,
	}
}

// ListUsers returns all users. The result is never nil.
func (s *UserService) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	s.logs.Debugw("users listed", "count", len(users))

	return repoUsersToRecords(users), nil
}

// GetUser returns the user with the given id, or ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id int64) (UserRecord, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrMultipleUsers) {
			return UserRecord{}, fmt.Errorf("%w: %w", ErrAmbiguousUser, err)
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return repoUserToRecord(user), nil
}

// CreateUser inserts a new user and returns it with the id assigned by the database.
func (s *UserService) CreateUser(ctx context.Context, msg NewUserMessage) (UserRecord, error) {
	user, err := s.repo.CreateUser(ctx, msg.Username, msg.Password, msg.Email)
	if err != nil {
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user created", "userId", user.ID)

	return repoUserToRecord(user), nil
}

// DeleteUser removes the user with the given id and returns how many rows went away.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}

	if deleted > 0 {
		s.logs.Infow("user deleted", "userId", id, "rows", deleted)
	}

	return deleted, nil
}

func repoUsersToRecords(users []repository.User) []UserRecord {
	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = repoUserToRecord(u)
	}
	return records
}

func repoUserToRecord(u repository.User) UserRecord {
	return UserRecord{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Email:    u.Email,
	}
}
