package models

const (
	StatusPending    = "pendiente"
	StatusInProgress = "en_progreso"
	StatusCompleted  = "completada"
)

type Task struct {
	ID          string   `bson:"_id" json:"id"`
	GroupID     string   `bson:"groupId" json:"groupId"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	AssignedTo  []string `bson:"assignedTo" json:"assignedTo"`
	Status      string   `bson:"status" json:"status"`
}

// IsAssigned reports whether userID appears in AssignedTo.
func (t Task) IsAssigned(userID string) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// CanEdit is true when the user is assigned and the task is not completed.
func (t Task) CanEdit(userID string) bool {
	return t.IsAssigned(userID) && t.Status != StatusCompleted
}

// TaskView is a task as seen by one requester.
type TaskView struct {
	Task
	CanEdit bool `json:"canEdit"`
}

// CreateTaskInput is the client payload for a new task. AssignedTo is nil when the
// field was omitted, which is different from an explicit empty list.
type CreateTaskInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assignedTo"`
	Status      string   `json:"status"`
}
