package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"usersvc/internal/http/handler/middleware"
	"usersvc/internal/http/payload"

	"go.uber.org/zap"
)

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            userService,
	}
}

func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.respondText(w, listUsersFailed, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to list users",
			"error", err,
			"handler", ListUsers,
			"request_id", requestId)
		return
	}

	h.respondJSON(w, users, http.StatusOK, requestId)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.pathID(w, r, GetUser, requestId)
	if !ok {
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.respondText(w, getUserFailed, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to get user",
			"error", err,
			"user_id", id,
			"handler", GetUser,
			"request_id", requestId)
		return
	}

	h.respondJSON(w, user, http.StatusOK, requestId)
}

func (h *UserHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respondText(w, invalidPayload, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.ToMessage())
	if err != nil {
		h.respondText(w, createUserFailed, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to create user",
			"error", err,
			"handler", CreateUser,
			"request_id", requestId)
		return
	}

	h.respondJSON(w, user, http.StatusOK, requestId)
}

func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.pathID(w, r, DeleteUser, requestId)
	if !ok {
		return
	}

	deleted, err := h.users.DeleteUser(r.Context(), id)
	if err != nil {
		h.respondText(w, deleteUserFailed, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to delete user",
			"error", err,
			"user_id", id,
			"handler", DeleteUser,
			"request_id", requestId)
		return
	}

	if deleted == 0 {
		h.respondText(w, deleteUserFailed, http.StatusBadRequest, requestId)
		h.logs.Infow("no user to delete",
			"user_id", id,
			"handler", DeleteUser,
			"request_id", requestId)
		return
	}

	h.respondText(w, fmt.Sprintf(deletedUsersFormat, deleted), http.StatusOK, requestId)
}

// pathID parses the {id} segment. An id that is not an integer or does not fit the
// int4 id column does not match the route, so the request is answered like any
// unknown path.
func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request, route, requestId string) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		NotFound(w, r)
		h.logs.Debugw("path id is not an integer",
			"id", raw,
			"handler", route,
			"request_id", requestId)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, resp any, code int, requestId string) {
	body, err := json.Marshal(resp)
	if err != nil {
		h.respondText(w, oopsErr, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		return
	}

	h.write(w, body, contentTypeJSON, code, requestId)
}

func (h *UserHandler) respondText(w http.ResponseWriter, msg string, code int, requestId string) {
	h.write(w, []byte(msg), contentTypeText, code, requestId)
}

func (h *UserHandler) write(w http.ResponseWriter, body []byte, contentType string, code int, requestId string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}
