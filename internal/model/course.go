package model

import "time"

// Course is a scheduled teaching session. A course occupies
// ceil(duration/60) consecutive hourly slots starting at its time.
type Course struct {
	BaseModel
	Name             string    `gorm:"type:varchar(255);not null"    json:"name"`
	ProfessorID      uint      `gorm:"not null"                      json:"professor_id"`
	Year             string    `gorm:"type:varchar(50);not null"     json:"year"`
	Day              string    `gorm:"type:varchar(20);not null"     json:"day"`
	Time             string    `gorm:"type:time;not null"            json:"time"`
	Duration         int       `gorm:"not null"                      json:"duration"` // minutes
	Room             *string   `gorm:"type:varchar(100)"             json:"room,omitempty"`
	MaxStudents      int       `gorm:"not null;default:50"           json:"max_students"`
	EnrolledStudents int       `gorm:"not null;default:0"            json:"enrolled_students"`
	Date             time.Time `gorm:"type:date;not null"            json:"date"`

	Professor *Professor `gorm:"foreignKey:ProfessorID" json:"professor,omitempty"`
}

func (Course) TableName() string { return "courses" }
