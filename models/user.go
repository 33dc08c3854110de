package models

// Role is a user's access level.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// Sentinel usernames stored or returned in place of a user that cannot be resolved.
const (
	UnknownMemberUsername  = "Usuario no encontrado"
	UnknownCreatorUsername = "Creador desconocido"
	MissingUsername        = "Username no disponible"
)

type User struct {
	ID       string `bson:"_id" json:"id"`
	Username string `bson:"username" json:"username"`
	Role     Role   `bson:"role" json:"role"`
	Password string `bson:"password,omitempty" json:"-"`
}

// UserSummary is the id/username pair exposed to group screens.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// DisplayName returns the username or MissingUsername when it is blank.
func (u User) DisplayName() string {
	if u.Username == "" {
		return MissingUsername
	}
	return u.Username
}
