package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/internal/repository"
)

// CourseService manages scheduled courses.
type CourseService struct {
	courses    repository.CourseRepository
	professors repository.ProfessorRepository
	logger     *zap.Logger
}

// NewCourseService creates the CourseService.
func NewCourseService(courses repository.CourseRepository, professors repository.ProfessorRepository, logger *zap.Logger) *CourseService {
	return &CourseService{courses: courses, professors: professors, logger: logger}
}

// Create schedules a course after checking that the professor exists.
func (s *CourseService) Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	professor, err := s.professors.GetByID(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, err
	}

	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	course.Professor = professor

	s.logger.Info("course created",
		zap.Uint("course_id", course.ID),
		zap.String("name", course.Name))

	resp := toCourseResponse(course)
	return &resp, nil
}

// Get returns one course projection.
func (s *CourseService) Get(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

// List returns all course projections in insertion order.
func (s *CourseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out, nil
}

// Update rewrites every course field from the request.
func (s *CourseService) Update(ctx context.Context, id uint, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	professor := course.Professor
	if req.ProfessorID != course.ProfessorID {
		professor, err = s.professors.GetByID(ctx, req.ProfessorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProfessorNotFound
			}
			return nil, err
		}
	}

	updated, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.BaseModel = course.BaseModel
	if req.EnrolledStudents == nil {
		updated.EnrolledStudents = course.EnrolledStudents
	}

	if err := s.courses.Update(ctx, updated); err != nil {
		return nil, err
	}
	updated.Professor = professor

	resp := toCourseResponse(updated)
	return &resp, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("course deleted", zap.Uint("course_id", id))
	return nil
}

func courseFromRequest(req *dto.CourseRequest) (*model.Course, error) {
	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	course := &model.Course{
		Name:        req.Name,
		ProfessorID: req.ProfessorID,
		Year:        req.Year,
		Day:         req.Day,
		Time:        req.Time,
		Duration:    req.Duration,
		Room:        req.Room,
		MaxStudents: req.MaxStudents,
		Date:        date,
	}
	if req.EnrolledStudents != nil {
		course.EnrolledStudents = *req.EnrolledStudents
	}
	return course, nil
}

func toCourseResponse(course *model.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:               course.ID,
		Name:             course.Name,
		ProfessorID:      course.ProfessorID,
		Year:             course.Year,
		Day:              course.Day,
		Time:             clockOf(course.Time),
		Duration:         course.Duration,
		Room:             course.Room,
		MaxStudents:      course.MaxStudents,
		EnrolledStudents: course.EnrolledStudents,
		Date:             course.Date.Format(model.DateFormat),
	}
	if course.Professor != nil && course.Professor.User != nil {
		resp.Professor = course.Professor.User.Name
	}
	return resp
}

// clockOf trims a database time value ("08:00:00") down to the
// HH:MM wire format.
func clockOf(t string) string {
	if len(t) > len(model.ClockFormat) {
		return t[:len(model.ClockFormat)]
	}
	return t
}
