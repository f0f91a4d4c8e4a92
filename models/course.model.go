package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	CourseName       string             `json:"courseName" gorm:"size:200;not null"`
	StartDate        time.Time          `json:"startDate"`
	EndDate          time.Time          `json:"endDate"`
	InstructorUserID uint               `json:"instructorUserId" gorm:"index"`
	Enrollments      []CourseEnrollment `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
