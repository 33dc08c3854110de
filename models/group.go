package models

// Member is a denormalized snapshot of a user taken when the group was created.
type Member struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username" json:"username"`
}

type Group struct {
	ID                string   `bson:"_id" json:"id"`
	Name              string   `bson:"name" json:"name"`
	Description       string   `bson:"description" json:"description"`
	Members           []Member `bson:"members" json:"members"`
	CreatedBy         string   `bson:"createdBy" json:"createdBy"`
	CreatedByUsername string   `bson:"createdByUsername" json:"createdByUsername"`
	Estatus           string   `bson:"estatus" json:"estatus"`
}

// HasMember compares by id only; usernames are snapshots and may be stale.
func (g Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// CreateGroupInput is the client payload for a new group.
type CreateGroupInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	CreatedBy   string   `json:"createdBy"`
	Estatus     string   `json:"estatus"`
}
