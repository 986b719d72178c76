package dto

// CreateCertificateRequest opens a certificate request for a student.
// Status and completion date are server-controlled: the record always
// starts as pending with no completion date.
type CreateCertificateRequest struct {
	StudentID uint    `json:"studentId" binding:"required"`
	Type      string  `json:"type"      binding:"required,oneof=inscription reussite notes stage"`
	Reason    *string `json:"reason"    binding:"omitempty"`
	Copies    int     `json:"copies"    binding:"required,min=1,max=10"`
}

// UpdateCertificateRequest moves a certificate through its workflow.
// Only the status is writable after creation.
type UpdateCertificateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing ready delivered"`
}

// CertificateResponse is the certificate projection with the student's
// display name pulled through certificate → student → user.
type CertificateResponse struct {
	ID             uint    `json:"id"`
	StudentID      uint    `json:"studentId"`
	StudentName    string  `json:"studentName"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	RequestDate    string  `json:"requestDate"`
	CompletionDate *string `json:"completionDate"`
	Reason         *string `json:"reason"`
	Copies         int     `json:"copies"`
}
