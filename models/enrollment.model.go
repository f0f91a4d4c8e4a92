package models

import (
	"time"

	"gorm.io/gorm"
)

type CourseEnrollment struct {
	gorm.Model
	CourseID   uint      `json:"courseId" gorm:"index;not null"`
	UserID     uint      `json:"userId" gorm:"index;not null"`
	EnrollDate time.Time `json:"enrollDate"`
}
