package handlers

import (
	"net/http"
	"time"

	"github.com/charly15/back-task/middleware"
)

type NotificationHandler struct {
	notifications NotificationService
}

func NewNotificationHandler(notifications NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GET /api/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.notifications.ListForUser(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "Failed to fetch notifications")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// PUT /api/notifications/read
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NotificationID string    `json:"notificationId"`
		CreatedAt      time.Time `json:"createdAt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	err := h.notifications.MarkAsRead(r.Context(), middleware.UserIDFromContext(r.Context()), req.NotificationID, req.CreatedAt)
	if err != nil {
		writeError(w, r, err, "Failed to mark notification as read")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Notification marked as read"})
}
