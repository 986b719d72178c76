package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/internal/repository"
)

// ProfessorService manages professor accounts and their profiles.
type ProfessorService struct {
	professors repository.ProfessorRepository
	users      repository.UserRepository
	logger     *zap.Logger
}

// NewProfessorService creates the ProfessorService.
func NewProfessorService(professors repository.ProfessorRepository, users repository.UserRepository, logger *zap.Logger) *ProfessorService {
	return &ProfessorService{professors: professors, users: users, logger: logger}
}

// Create opens a professor account with the default password and a
// generated employee code, then returns the flattened projection.
func (s *ProfessorService) Create(ctx context.Context, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	taken, err := s.users.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hireDate, err := time.Parse(model.DateFormat, req.HireDate)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleProfessor,
	}
	professor := &model.Professor{
		Specialty:  req.Specialty,
		Department: req.Department,
		HireDate:   hireDate,
	}

	if err := s.professors.CreateWithUser(ctx, user, professor); err != nil {
		return nil, err
	}

	s.logger.Info("professor created",
		zap.Uint("professor_id", professor.ID),
		zap.String("code", professor.Code))

	resp := toProfessorResponse(professor)
	return &resp, nil
}

// Get returns one professor projection.
func (s *ProfessorService) Get(ctx context.Context, id uint) (*dto.ProfessorResponse, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProfessorResponse(professor)
	return &resp, nil
}

// List returns all professor projections in insertion order.
func (s *ProfessorService) List(ctx context.Context) ([]dto.ProfessorResponse, error) {
	professors, err := s.professors.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfessorResponse, 0, len(professors))
	for i := range professors {
		out = append(out, toProfessorResponse(&professors[i]))
	}
	return out, nil
}

// Update rewrites the mutable account and profile fields. The hire
// date and employee code never change after creation.
func (s *ProfessorService) Update(ctx context.Context, id uint, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTaken(ctx, req.Email, professor.UserID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	professor.User.Name = req.Name
	professor.User.Email = req.Email
	professor.Specialty = req.Specialty
	professor.Department = req.Department

	if err := s.professors.UpdateWithUser(ctx, professor); err != nil {
		return nil, err
	}

	resp := toProfessorResponse(professor)
	return &resp, nil
}

// Delete removes the professor's account; the profile follows by
// cascade.
func (s *ProfessorService) Delete(ctx context.Context, id uint) error {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.professors.Delete(ctx, professor); err != nil {
		return err
	}

	s.logger.Info("professor deleted", zap.Uint("professor_id", id))
	return nil
}

func toProfessorResponse(professor *model.Professor) dto.ProfessorResponse {
	courses := make([]string, 0, len(professor.Courses))
	for _, course := range professor.Courses {
		courses = append(courses, course.Name)
	}

	resp := dto.ProfessorResponse{
		ID:         professor.ID,
		EmployeeID: professor.Code,
		Specialty:  professor.Specialty,
		Department: professor.Department,
		Courses:    courses,
		HireDate:   professor.HireDate.Format(model.DateFormat),
	}
	if professor.User != nil {
		resp.Name = professor.User.Name
		resp.Email = professor.User.Email
		resp.Role = professor.User.Role
	}
	return resp
}
