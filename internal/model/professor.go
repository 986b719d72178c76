package model

import (
	"fmt"
	"time"
)

// Professor is the professor profile row, 1:1 with its owning user.
type Professor struct {
	BaseModel
	UserID         uint      `gorm:"not null;uniqueIndex"                  json:"user_id"`
	Code           string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	Specialty      string    `gorm:"type:varchar(255);not null"            json:"specialty"`
	Department     string    `gorm:"type:varchar(255);not null"            json:"department"`
	HireDate       time.Time `gorm:"type:date;not null"                    json:"hire_date"`
	OfficeLocation *string   `gorm:"type:varchar(255)"                     json:"office_location,omitempty"`
	OfficeHours    *string   `gorm:"type:varchar(255)"                     json:"office_hours,omitempty"`
	Qualifications *string   `gorm:"type:text"                             json:"qualifications,omitempty"`

	User    *User    `gorm:"foreignKey:UserID"      json:"user,omitempty"`
	Courses []Course `gorm:"foreignKey:ProfessorID" json:"courses,omitempty"`
}

func (Professor) TableName() string { return "professors" }

// ProfessorCode derives the public employee code from the owning
// user's numeric id. Cosmetic only, never used for lookups.
func ProfessorCode(userID uint) string {
	return fmt.Sprintf("UM6D-PROF-%03d", userID)
}
