package api

import "time"

// Note mirrors the backend Note model fields relevant to the CLI.
type Note struct {
	ID         uint64    `json:"id"`
	OwnerID    uint64    `json:"ownerID"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsPublic   bool      `json:"isPublic"`
	SharedWith []string  `json:"sharedWith"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Owner      *User     `json:"owner,omitempty"`
}

// User mirrors the backend User model.
type User struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// IsSharedWithEmail reports whether email is on the note's recipient list.
func (n Note) IsSharedWithEmail(email string) bool {
	for _, recipient := range n.SharedWith {
		if recipient == email {
			return true
		}
	}
	return false
}

// CanEdit mirrors the server's edit policy for display purposes only: the
// server re-checks on every mutating request, so a stale answer here can
// never grant access.
func (n Note) CanEdit(u User) bool {
	return u.IsAdmin() || n.OwnerID == u.ID || n.IsSharedWithEmail(u.Email)
}

// LoginResponse is returned by POST /auth/login and /auth/register.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Permissions is returned by GET /notes/:id/permissions.
type Permissions struct {
	NoteID           uint64   `json:"noteID"`
	NoteTitle        string   `json:"noteTitle"`
	NoteOwnerID      uint64   `json:"noteOwnerID"`
	NoteSharedWith   []string `json:"noteSharedWith"`
	CurrentUserID    uint64   `json:"currentUserID"`
	CurrentUserEmail string   `json:"currentUserEmail"`
	CurrentUserRole  string   `json:"currentUserRole"`
	CanEdit          bool     `json:"canEdit"`
	Checks           Decision `json:"permissions"`
}

// Decision is the per-check breakdown inside a Permissions response.
type Decision struct {
	IsAdmin          bool `json:"isAdmin"`
	IsOwner          bool `json:"isOwner"`
	IsSharedWithUser bool `json:"isSharedWithUser"`
}
