package dto

// CourseRequest is the create/update payload for a course. Creation
// and full update validate the same field set.
type CourseRequest struct {
	Name             string  `json:"name"             binding:"required,max=255"`
	ProfessorID      uint    `json:"professorId"      binding:"required"`
	Year             string  `json:"year"             binding:"required"`
	Day              string  `json:"day"              binding:"required"`
	Time             string  `json:"time"             binding:"required,datetime=15:04"`
	Duration         int     `json:"duration"         binding:"required,min=30"`
	Room             *string `json:"room"             binding:"omitempty"`
	MaxStudents      int     `json:"maxStudents"      binding:"required,min=1"`
	EnrolledStudents *int    `json:"enrolledStudents" binding:"omitempty"`
	Date             string  `json:"date"             binding:"required,datetime=2006-01-02"`
}

// CourseResponse is the course projection with the professor's display
// name pulled through course → professor → user.
type CourseResponse struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Professor        string  `json:"professor"`
	ProfessorID      uint    `json:"professorId"`
	Year             string  `json:"year"`
	Day              string  `json:"day"`
	Time             string  `json:"time"`
	Duration         int     `json:"duration"`
	Room             *string `json:"room"`
	MaxStudents      int     `json:"maxStudents"`
	EnrolledStudents int     `json:"enrolledStudents"`
	Date             string  `json:"date"`
}
