package handler

// Client-facing bodies. They are fixed strings so no error detail reaches the caller.
const (
	oopsErr = "Oops! Something went wrong. Please try again later."

	listUsersFailed  = "Error trying to read all users from database."
	getUserFailed    = "User not found."
	createUserFailed = "Error trying to create a new user."
	invalidPayload   = "Invalid request payload."
	deleteUserFailed = "User not found"

	deletedUsersFormat = "Successfully deleted %d user(s)"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)
