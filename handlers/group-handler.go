package handlers

import (
	"net/http"

	"github.com/charly15/back-task/middleware"
	"github.com/charly15/back-task/models"

	"github.com/gorilla/mux"
)

type GroupHandler struct {
	groups GroupService
	tasks  TaskService
	users  UserService
}

func NewGroupHandler(groups GroupService, tasks TaskService, users UserService) *GroupHandler {
	return &GroupHandler{groups: groups, tasks: tasks, users: users}
}

// GET /api/groups
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.ListGroups(r.Context())
	if err != nil {
		writeError(w, r, err, "Error fetching groups")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// POST /api/groups
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var in models.CreateGroupInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), in)
	if err != nil {
		writeError(w, r, err, "Error creating group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

// GET /api/groups/users
func (h *GroupHandler) ListCandidateMembers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUserSummaries(r.Context())
	if err != nil {
		writeError(w, r, err, "Error fetching users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GET /api/groups/tasks/{groupId}
func (h *GroupHandler) ListGroupTasks(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]
	requesterID := middleware.UserIDFromContext(r.Context())

	tasks, err := h.groups.ListGroupTasks(r.Context(), groupID, requesterID)
	if err != nil {
		writeError(w, r, err, "Error fetching tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// POST /api/groups/tasks/{groupId}
func (h *GroupHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	var in models.CreateTaskInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "")
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), groupID, in)
	if err != nil {
		writeError(w, r, err, "Error creating task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type statusRequest struct {
	Status  string `json:"status"`
	Estatus string `json:"estatus"`
}

// PUT /api/groups/tasks/{groupId}/{taskId}/status
func (h *GroupHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	task, err := h.tasks.UpdateTaskStatus(r.Context(), vars["groupId"], vars["taskId"], middleware.UserIDFromContext(r.Context()), req.Status)
	if err != nil {
		writeError(w, r, err, "Error updating task status")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// PUT /api/groups/{groupId}/status
func (h *GroupHandler) UpdateGroupStatus(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	if err := h.groups.UpdateGroupStatus(r.Context(), groupID, middleware.UserIDFromContext(r.Context()), req.Estatus); err != nil {
		writeError(w, r, err, "Error updating group status")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Group status updated"})
}
