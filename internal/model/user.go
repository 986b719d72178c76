package model

import "time"

// User roles.
const (
	RoleAdmin     = "admin"
	RoleProfessor = "professor"
	RoleStudent   = "student"
)

// User is the account row shared by all roles. Students and professors
// carry an additional 1:1 profile row keyed on user_id.
type User struct {
	BaseModel
	Name         string     `gorm:"type:varchar(255);not null"                 json:"name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"     json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                 json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Phone        *string    `gorm:"type:varchar(30)"                           json:"phone,omitempty"`
	Address      *string    `gorm:"type:varchar(255)"                          json:"address,omitempty"`
	BirthDate    *time.Time `gorm:"type:date"                                  json:"birth_date,omitempty"`
	Nationality  *string    `gorm:"type:varchar(100)"                          json:"nationality,omitempty"`
	Avatar       *string    `gorm:"type:varchar(255)"                          json:"avatar,omitempty"`

	Student   *Student   `gorm:"foreignKey:UserID" json:"student,omitempty"`
	Professor *Professor `gorm:"foreignKey:UserID" json:"professor,omitempty"`
}

func (User) TableName() string { return "users" }
