package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/model"
)

// CertificateRepository is the certificate-request data-access interface.
type CertificateRepository interface {
	Create(ctx context.Context, cert *model.Certificate) error
	GetByID(ctx context.Context, id uint) (*model.Certificate, error)
	List(ctx context.Context) ([]model.Certificate, error)
	Update(ctx context.Context, cert *model.Certificate) error
	Delete(ctx context.Context, id uint) error
	// CountByStatus returns the number of requests per status, keyed by
	// the raw status string. Statuses with no rows are absent.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type certificateRepo struct {
	db *gorm.DB
}

// NewCertificateRepo creates the GORM-backed CertificateRepository.
func NewCertificateRepo(db *gorm.DB) CertificateRepository {
	return &certificateRepo{db: db}
}

func (r *certificateRepo) Create(ctx context.Context, cert *model.Certificate) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *certificateRepo) GetByID(ctx context.Context, id uint) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.db.WithContext(ctx).
		Preload("Student.User").
		Where("id = ?", id).
		First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificateRepo) List(ctx context.Context) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.db.WithContext(ctx).
		Preload("Student.User").
		Order("certificates.id").
		Find(&certs).Error
	if err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *certificateRepo) Update(ctx context.Context, cert *model.Certificate) error {
	return r.db.WithContext(ctx).Omit("Student").Save(cert).Error
}

func (r *certificateRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Certificate{}, id).Error
}

func (r *certificateRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Certificate{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.N
	}
	return counts, nil
}
