package dto

// CreateStudentRequest creates a user account plus its student profile.
type CreateStudentRequest struct {
	Name           string   `json:"name"           binding:"required,max=255"`
	Email          string   `json:"email"          binding:"required,email,max=255"`
	Year           string   `json:"year"           binding:"required"`
	Phone          *string  `json:"phone"          binding:"omitempty"`
	EnrollmentDate string   `json:"enrollmentDate" binding:"required,datetime=2006-01-02"`
	Status         string   `json:"status"         binding:"required,oneof=active inactive graduated"`
	Average        *float64 `json:"average"        binding:"omitempty"`
}

// UpdateStudentRequest updates the user and profile rows together.
// The enrollment date and generated code are immutable.
type UpdateStudentRequest struct {
	Name    string   `json:"name"    binding:"required,max=255"`
	Email   string   `json:"email"   binding:"required,email,max=255"`
	Year    string   `json:"year"    binding:"required"`
	Phone   *string  `json:"phone"   binding:"omitempty"`
	Status  string   `json:"status"  binding:"required,oneof=active inactive graduated"`
	Average *float64 `json:"average" binding:"omitempty"`
}

// StudentResponse is the flattened student projection: user fields and
// profile fields merged into one object.
type StudentResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	StudentID      string  `json:"studentId"`
	Year           string  `json:"year"`
	Average        float64 `json:"average"`
	Status         string  `json:"status"`
	Phone          *string `json:"phone"`
	EnrollmentDate string  `json:"enrollmentDate"`
}
