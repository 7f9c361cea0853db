package models

// Note is the shared resource of the system. SharedWith is a denormalized
// list of recipient email strings stored as a JSON column; membership is by
// literal email, never by resolved account, so sharing with an address that
// is not (yet) registered is allowed.
type Note struct {
	BaseModel
	OwnerID    uint64   `json:"ownerID" gorm:"not null;index"`
	Title      string   `json:"title" gorm:"type:varchar(255);not null"`
	Content    string   `json:"content" gorm:"type:text;not null"`
	IsPublic   bool     `json:"isPublic" gorm:"not null;default:false;index"`
	SharedWith []string `json:"sharedWith" gorm:"type:jsonb;serializer:json"`

	Owner User `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
}

func (Note) TableName() string {
	return "notes"
}

// IsSharedWith reports whether email appears in the note's recipient list.
func (n *Note) IsSharedWith(email string) bool {
	for _, recipient := range n.SharedWith {
		if recipient == email {
			return true
		}
	}
	return false
}

// AddRecipient appends email to SharedWith if not already present and
// reports whether the list changed. Sharing the same email twice is a no-op.
func (n *Note) AddRecipient(email string) bool {
	if n.IsSharedWith(email) {
		return false
	}
	n.SharedWith = append(n.SharedWith, email)
	return true
}
