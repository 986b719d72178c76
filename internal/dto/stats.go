package dto

// DashboardStatsResponse backs the dashboard widgets.
type DashboardStatsResponse struct {
	TotalStudents        int64            `json:"totalStudents"`
	TotalProfessors      int64            `json:"totalProfessors"`
	TotalCourses         int64            `json:"totalCourses"`
	UpcomingEvents       int64            `json:"upcomingEvents"`
	CertificatesByStatus map[string]int64 `json:"certificatesByStatus"`
}
