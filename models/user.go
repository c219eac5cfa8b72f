package models

// User model for authentication and todo ownership
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string `gorm:"column:hashed_password;not null" json:"-"`
	IsActive       bool   `gorm:"column:is_active;not null" json:"is_active"`
	Role           string `gorm:"default:user" json:"role"`
}

func (User) TableName() string {
	return "users"
}
