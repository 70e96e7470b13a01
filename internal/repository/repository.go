package repository

import (
	"context"
	"errors"
	"fmt"
	"usersvc/internal/db"
)

var (
	ErrUserNotFound  error = errors.New("user not found")
	ErrMultipleUsers error = errors.New("more than one user matches id")
	errNoRowReturned error = errors.New("insert returned no row")
)

const (
	selectUsersQuery    = "SELECT * FROM users"
	selectUserByIDQuery = "SELECT * FROM users WHERE id = ?"
	insertUserQuery     = "INSERT INTO users (username, password, email) VALUES (?, ?, ?) RETURNING *"
	deleteUserQuery     = "DELETE FROM users WHERE id = ?"
)

type UserRepository struct {
	db Database
}

func NewUserRepository(db Database) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// ListUsers returns every row in storage order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := r.db.Query(ctx, &users, selectUsersQuery); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (User, error) {
	var users []User
	if err := r.db.Query(ctx, &users, selectUserByIDQuery, id); err != nil {
		return User{}, fmt.Errorf("select user by id: %w", err)
	}

	switch len(users) {
	case 0:
		return User{}, ErrUserNotFound
	case 1:
		return users[0], nil
	default:
		return User{}, fmt.Errorf("%w: %d rows for id %d", ErrMultipleUsers, len(users), id)
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, username, password, email string) (User, error) {
	var created []User

	err := r.db.Transaction(ctx, func(tx db.Querier) error {
		if err := tx.Query(ctx, &created, insertUserQuery, username, password, email); err != nil {
			return err
		}
		if len(created) == 0 {
			return errNoRowReturned
		}
		return nil
	})
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return created[0], nil
}

// DeleteUser removes the row with the given id and returns the number of rows
// deleted, which is 0 or 1.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	var deleted int64

	err := r.db.Transaction(ctx, func(tx db.Querier) error {
		n, err := tx.Exec(ctx, deleteUserQuery, id)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}

	return deleted, nil
}
