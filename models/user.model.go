package models

import "gorm.io/gorm"

// User roles. A user is exactly one of these; the role never changes after
// registration.
const (
	RoleInstructor = "Instructor"
	RoleStudent    = "Student"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"default:''"`
	UserName string `json:"userName" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"not null"`
}
