package model

import "time"

// Certificate document types.
const (
	CertInscription = "inscription"
	CertReussite    = "reussite"
	CertNotes       = "notes"
	CertStage       = "stage"
)

// Certificate statuses. The reference UI only moves forward through
// pending → processing → ready → delivered; the API itself accepts any
// of the four values.
const (
	CertPending    = "pending"
	CertProcessing = "processing"
	CertReady      = "ready"
	CertDelivered  = "delivered"
)

// Certificate is a student's request for an administrative document.
type Certificate struct {
	BaseModel
	StudentID      uint       `gorm:"not null"                                    json:"student_id"`
	Type           string     `gorm:"type:varchar(20);not null"                   json:"type"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestDate    time.Time  `gorm:"type:date;not null"                          json:"request_date"`
	CompletionDate *time.Time `gorm:"type:date"                                   json:"completion_date,omitempty"`
	Reason         *string    `gorm:"type:text"                                   json:"reason,omitempty"`
	Copies         int        `gorm:"not null;default:1"                          json:"copies"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Certificate) TableName() string { return "certificates" }
