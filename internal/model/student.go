package model

import (
	"fmt"
	"time"
)

// Student statuses.
const (
	StudentActive    = "active"
	StudentInactive  = "inactive"
	StudentGraduated = "graduated"
)

// Student is the student profile row, 1:1 with its owning user.
type Student struct {
	BaseModel
	UserID            uint      `gorm:"not null;uniqueIndex"                      json:"user_id"`
	Code              string    `gorm:"type:varchar(20);not null;uniqueIndex"     json:"code"`
	Year              string    `gorm:"type:varchar(50);not null"                 json:"year"`
	Average           float64   `gorm:"type:numeric(4,2);not null;default:0"      json:"average"`
	Status            string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	EnrollmentDate    time.Time `gorm:"type:date;not null"                        json:"enrollment_date"`
	Specialization    *string   `gorm:"type:varchar(255)"                         json:"specialization,omitempty"`
	PreviousEducation *string   `gorm:"type:text"                                 json:"previous_education,omitempty"`
	EmergencyContact  *string   `gorm:"type:varchar(255)"                         json:"emergency_contact,omitempty"`
	EmergencyPhone    *string   `gorm:"type:varchar(30)"                          json:"emergency_phone,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Student) TableName() string { return "students" }

// StudentCode derives the public student code from the owning user's
// numeric id, prefixed with the enrollment year. Cosmetic only, never
// used for lookups.
func StudentCode(userID uint, year int) string {
	return fmt.Sprintf("UM6D%d%03d", year, userID)
}
