package handlers

import (
	"net/http"

	"github.com/charly15/back-task/models"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /api/users/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "Error fetching users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type roleUpdateResponse struct {
	Msg  string      `json:"msg"`
	Role models.Role `json:"role"`
}

// PUT /api/users/users/{userId}
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	role, err := h.users.UpdateRole(r.Context(), userID, req.Role)
	if err != nil {
		writeError(w, r, err, "Error updating role")
		return
	}
	writeJSON(w, http.StatusOK, roleUpdateResponse{Msg: "Role updated", Role: role})
}
