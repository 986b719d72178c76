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

// CertificateService manages certificate requests and their workflow.
type CertificateService struct {
	certificates repository.CertificateRepository
	students     repository.StudentRepository
	logger       *zap.Logger
}

// NewCertificateService creates the CertificateService.
func NewCertificateService(certificates repository.CertificateRepository, students repository.StudentRepository, logger *zap.Logger) *CertificateService {
	return &CertificateService{certificates: certificates, students: students, logger: logger}
}

// Create opens a certificate request. Whatever the client sends, a new
// request always starts as pending, dated today, with no completion
// date.
func (s *CertificateService) Create(ctx context.Context, req *dto.CreateCertificateRequest) (*dto.CertificateResponse, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	cert := &model.Certificate{
		StudentID:   req.StudentID,
		Type:        req.Type,
		Status:      model.CertPending,
		RequestDate: time.Now(),
		Reason:      req.Reason,
		Copies:      req.Copies,
	}

	if err := s.certificates.Create(ctx, cert); err != nil {
		return nil, err
	}
	cert.Student = student

	s.logger.Info("certificate requested",
		zap.Uint("certificate_id", cert.ID),
		zap.Uint("student_id", cert.StudentID),
		zap.String("type", cert.Type))

	resp := toCertificateResponse(cert)
	return &resp, nil
}

// Get returns one certificate projection.
func (s *CertificateService) Get(ctx context.Context, id uint) (*dto.CertificateResponse, error) {
	cert, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCertificateResponse(cert)
	return &resp, nil
}

// List returns all certificate projections in insertion order.
func (s *CertificateService) List(ctx context.Context) ([]dto.CertificateResponse, error) {
	certs, err := s.certificates.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CertificateResponse, 0, len(certs))
	for i := range certs {
		out = append(out, toCertificateResponse(&certs[i]))
	}
	return out, nil
}

// UpdateStatus moves a request through its workflow. Reaching ready
// stamps the completion date once; later transitions keep the original
// stamp.
func (s *CertificateService) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateCertificateRequest) (*dto.CertificateResponse, error) {
	cert, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cert.Status = req.Status
	if req.Status == model.CertReady && cert.CompletionDate == nil {
		now := time.Now()
		cert.CompletionDate = &now
	}

	if err := s.certificates.Update(ctx, cert); err != nil {
		return nil, err
	}

	s.logger.Info("certificate status updated",
		zap.Uint("certificate_id", cert.ID),
		zap.String("status", cert.Status))

	resp := toCertificateResponse(cert)
	return &resp, nil
}

// Delete removes a certificate request.
func (s *CertificateService) Delete(ctx context.Context, id uint) error {
	if _, err := s.certificates.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.certificates.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("certificate deleted", zap.Uint("certificate_id", id))
	return nil
}

func toCertificateResponse(cert *model.Certificate) dto.CertificateResponse {
	resp := dto.CertificateResponse{
		ID:          cert.ID,
		StudentID:   cert.StudentID,
		Type:        cert.Type,
		Status:      cert.Status,
		RequestDate: cert.RequestDate.Format(model.DateFormat),
		Reason:      cert.Reason,
		Copies:      cert.Copies,
	}
	if cert.CompletionDate != nil {
		completed := cert.CompletionDate.Format(model.DateFormat)
		resp.CompletionDate = &completed
	}
	if cert.Student != nil && cert.Student.User != nil {
		resp.StudentName = cert.Student.User.Name
	}
	return resp
}
