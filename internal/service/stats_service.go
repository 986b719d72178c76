package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/repository"
)

// StatsService computes the dashboard counters.
type StatsService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewStatsService creates the StatsService.
func NewStatsService(repo *repository.Repository, logger *zap.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger, now: time.Now}
}

// Dashboard aggregates the headline counts. Upcoming events are those
// dated today or later.
func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	students, err := s.repo.Student.Count(ctx)
	if err != nil {
		return nil, err
	}
	professors, err := s.repo.Professor.Count(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.repo.Course.Count(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	upcoming, err := s.repo.Event.CountUpcoming(ctx, today)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repo.Certificate.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalStudents:        students,
		TotalProfessors:      professors,
		TotalCourses:         courses,
		UpcomingEvents:       upcoming,
		CertificatesByStatus: byStatus,
	}, nil
}
