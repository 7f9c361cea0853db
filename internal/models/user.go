package models

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	BaseModel
	Name         string   `json:"name" gorm:"type:varchar(255);not null"`
	Email        string   `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"type:text;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	Notes        []Note   `json:"-" gorm:"foreignKey:OwnerID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
