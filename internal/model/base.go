package model

import "time"

// BaseModel holds the identity and audit columns shared by every table.
// Primary keys are numeric because the student and employee codes are
// derived from them.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"                         json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// ClockFormat is the wire format for times of day.
const ClockFormat = "15:04"
