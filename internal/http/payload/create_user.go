package payload

import (
	"usersvc/internal/core"

	"github.com/jellydator/validation"
)

// CreateUserRequest is the body of POST /users. Fields are pointers so that a
// missing or null field can be told apart from an empty string.
type CreateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.NotNil),
		validation.Field(&c.Password, validation.NotNil),
		validation.Field(&c.Email, validation.NotNil),
	)
}

// ToMessage must only be called on a request that passed Validate.
func (c CreateUserRequest) ToMessage() core.NewUserMessage {
	return core.NewUserMessage{
		Username: *c.Username,
		Password: *c.Password,
		Email:    *c.Email,
	}
}
