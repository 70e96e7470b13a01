package core

// UserRecord is a user as exposed to clients. Field order fixes the JSON key order.
type UserRecord struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type NewUserMessage struct {
	Username string
	Password string
	Email    string
}
