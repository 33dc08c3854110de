package handlers

import (
	"net/http"
	"path"

	"github.com/gorilla/mux"
)

// Router collects the handlers mounted by NewRouter. Notifications is nil when
// notifications are disabled.
type Router struct {
	Groups        *GroupHandler
	Users         *UserHandler
	Auth          *AuthHandler
	Notifications *NotificationHandler
	Health        *HealthHandler
	Authenticate  mux.MiddlewareFunc
}

// NewRouter mounts every route. Everything under /api except /api/auth goes through Authenticate.
func NewRouter(h Router) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(h.Authenticate)

	protected.HandleFunc("/groups", h.Groups.ListGroups).Methods(http.MethodGet)
	protected.HandleFunc("/groups", h.Groups.CreateGroup).Methods(http.MethodPost)
	protected.HandleFunc("/groups/users", h.Groups.ListCandidateMembers).Methods(http.MethodGet)
	protected.HandleFunc("/groups/tasks/{groupId}", h.Groups.ListGroupTasks).Methods(http.MethodGet)
	protected.HandleFunc("/groups/tasks/{groupId}", h.Groups.CreateTask).Methods(http.MethodPost)
	protected.HandleFunc("/groups/tasks/{groupId}/{taskId}/status", h.Groups.UpdateTaskStatus).Methods(http.MethodPut)
	protected.HandleFunc("/groups/{groupId}/status", h.Groups.UpdateGroupStatus).Methods(http.MethodPut)

	protected.HandleFunc("/users/users", h.Users.ListUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users/users/{userId}", h.Users.UpdateRole).Methods(http.MethodPut)
	protected.HandleFunc("/users", h.Users.ListUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", h.Users.UpdateRole).Methods(http.MethodPut).MatcherFunc(notUsersSegment)

	if h.Notifications != nil {
		protected.HandleFunc("/notifications", h.Notifications.ListNotifications).Methods(http.MethodGet)
		protected.HandleFunc("/notifications/read", h.Notifications.MarkAsRead).Methods(http.MethodPut)
	}

	return r
}

// notUsersSegment keeps the /users/{userId} alias from capturing /users/users.
func notUsersSegment(r *http.Request, _ *mux.RouteMatch) bool {
	return path.Base(r.URL.Path) != "users"
}
