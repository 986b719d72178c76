package dto

// CreateProfessorRequest creates a user account plus its professor profile.
type CreateProfessorRequest struct {
	Name       string `json:"name"       binding:"required,max=255"`
	Email      string `json:"email"      binding:"required,email,max=255"`
	Specialty  string `json:"specialty"  binding:"required"`
	Department string `json:"department" binding:"required"`
	HireDate   string `json:"hireDate"   binding:"required,datetime=2006-01-02"`
}

// UpdateProfessorRequest updates the user and profile rows together.
type UpdateProfessorRequest struct {
	Name       string `json:"name"       binding:"required,max=255"`
	Email      string `json:"email"      binding:"required,email,max=255"`
	Specialty  string `json:"specialty"  binding:"required"`
	Department string `json:"department" binding:"required"`
}

// ProfessorResponse is the flattened professor projection; Courses
// lists the names of the courses the professor teaches.
type ProfessorResponse struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	EmployeeID string   `json:"employeeId"`
	Specialty  string   `json:"specialty"`
	Department string   `json:"department"`
	Courses    []string `json:"courses"`
	HireDate   string   `json:"hireDate"`
}
