package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/internal/repository"
	"github.com/aminbn12/planiunv/pkg/jwt"
	"github.com/aminbn12/planiunv/pkg/redis"
)

// Domain errors surfaced to the API layer. Missing records are
// reported with gorm.ErrRecordNotFound straight from the repositories.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrProfessorNotFound  = errors.New("professor not found")
	ErrStudentNotFound    = errors.New("student not found")
)

// DefaultPassword is the initial password of accounts created through
// the admin portal. Users are expected to change it after first login.
const DefaultPassword = "password123"

// Service aggregates all business services.
type Service struct {
	Auth        *AuthService
	Student     *StudentService
	Professor   *ProfessorService
	Course      *CourseService
	Event       *EventService
	Certificate *CertificateService
	Planning    *PlanningService
	Export      *ExportService
	Stats       *StatsService
}

// NewService wires the services. rdb may be nil, in which case logout
// revocation is skipped and tokens stay valid until expiry.
func NewService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	planning := NewPlanningService(repo.Course, logger)
	return &Service{
		Auth:        NewAuthService(repo.User, jwtMgr, rdb, logger),
		Student:     NewStudentService(repo.Student, repo.User, logger),
		Professor:   NewProfessorService(repo.Professor, repo.User, logger),
		Course:      NewCourseService(repo.Course, repo.Professor, logger),
		Event:       NewEventService(repo.Event, logger),
		Certificate: NewCertificateService(repo.Certificate, repo.Student, logger),
		Planning:    planning,
		Export:      NewExportService(planning, logger),
		Stats:       NewStatsService(repo, logger),
	}
}
