package model

import "time"

// Event categories.
const (
	EventMeeting    = "meeting"
	EventExam       = "exam"
	EventConference = "conference"
	EventOther      = "other"
)

// Event is a one-off calendar entry (meeting, exam, conference…).
type Event struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null"              json:"title"`
	Description string    `gorm:"type:text;not null"                      json:"description"`
	Date        time.Time `gorm:"type:date;not null"                      json:"date"`
	Time        string    `gorm:"type:time;not null"                      json:"time"`
	Location    string    `gorm:"type:varchar(255);not null"              json:"location"`
	Organizer   *string   `gorm:"type:varchar(255)"                       json:"organizer,omitempty"`
	Type        string    `gorm:"type:varchar(20);not null;default:'other'" json:"type"`
}

func (Event) TableName() string { return "events" }
