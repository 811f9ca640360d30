package domain

import "time"

// Role is the closed set of account roles. Artists upload and manage
// paintings; enthusiasts rate and comment on them.
type Role string

const (
	RoleArtist     Role = "artist"
	RoleEnthusiast Role = "enthusiast"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleArtist || r == RoleEnthusiast
}

// Identity models a registered account. Username is unique and immutable
// after creation; ID is assigned by the session store at registration time.
type Identity struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      Role      `json:"role"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}
