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

// StudentService manages student accounts and their profiles.
type StudentService struct {
	students repository.StudentRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

// NewStudentService creates the StudentService.
func NewStudentService(students repository.StudentRepository, users repository.UserRepository, logger *zap.Logger) *StudentService {
	return &StudentService{students: students, users: users, logger: logger}
}

// Create opens a student account with the default password and a
// generated student code, then returns the flattened projection.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
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

	enrollment, err := time.Parse(model.DateFormat, req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
		Phone:        req.Phone,
	}
	student := &model.Student{
		Year:           req.Year,
		Status:         req.Status,
		EnrollmentDate: enrollment,
	}
	if req.Average != nil {
		student.Average = *req.Average
	}

	if err := s.students.CreateWithUser(ctx, user, student); err != nil {
		return nil, err
	}

	s.logger.Info("student created",
		zap.Uint("student_id", student.ID),
		zap.String("code", student.Code))

	resp := toStudentResponse(student)
	return &resp, nil
}

// Get returns one student projection.
func (s *StudentService) Get(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

// List returns all student projections in insertion order.
func (s *StudentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, toStudentResponse(&students[i]))
	}
	return out, nil
}

// Update rewrites the mutable account and profile fields. The
// enrollment date and student code never change after creation.
func (s *StudentService) Update(ctx context.Context, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTaken(ctx, req.Email, student.UserID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	student.User.Name = req.Name
	student.User.Email = req.Email
	student.User.Phone = req.Phone
	student.Year = req.Year
	student.Status = req.Status
	if req.Average != nil {
		student.Average = *req.Average
	}

	if err := s.students.UpdateWithUser(ctx, student); err != nil {
		return nil, err
	}

	resp := toStudentResponse(student)
	return &resp, nil
}

// Delete removes the student's account; the profile follows by
// cascade.
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.students.Delete(ctx, student); err != nil {
		return err
	}

	s.logger.Info("student deleted", zap.Uint("student_id", id))
	return nil
}

func toStudentResponse(student *model.Student) dto.StudentResponse {
	resp := dto.StudentResponse{
		ID:             student.ID,
		StudentID:      student.Code,
		Year:           student.Year,
		Average:        student.Average,
		Status:         student.Status,
		EnrollmentDate: student.EnrollmentDate.Format(model.DateFormat),
	}
	if student.User != nil {
		resp.Name = student.User.Name
		resp.Email = student.User.Email
		resp.Role = student.User.Role
		resp.Phone = student.User.Phone
	}
	return resp
}
