package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/model"
)

// ProfessorRepository is the professor-profile data-access interface.
// Multi-table writes follow the same transactional contract as
// StudentRepository.
type ProfessorRepository interface {
	CreateWithUser(ctx context.Context, user *model.User, professor *model.Professor) error
	GetByID(ctx context.Context, id uint) (*model.Professor, error)
	List(ctx context.Context) ([]model.Professor, error)
	UpdateWithUser(ctx context.Context, professor *model.Professor) error
	Delete(ctx context.Context, professor *model.Professor) error
	Count(ctx context.Context) (int64, error)
}

type professorRepo struct {
	db *gorm.DB
}

// NewProfessorRepo creates the GORM-backed ProfessorRepository.
func NewProfessorRepo(db *gorm.DB) ProfessorRepository {
	return &professorRepo{db: db}
}

func (r *professorRepo) CreateWithUser(ctx context.Context, user *model.User, professor *model.Professor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		professor.UserID = user.ID
		if professor.Code == "" {
			professor.Code = model.ProfessorCode(user.ID)
		}
		if err := tx.Create(professor).Error; err != nil {
			return err
		}
		professor.User = user
		return nil
	})
}

func (r *professorRepo) GetByID(ctx context.Context, id uint) (*model.Professor, error) {
	var professor model.Professor
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Courses").
		Where("id = ?", id).
		First(&professor).Error
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

func (r *professorRepo) List(ctx context.Context) ([]model.Professor, error) {
	var professors []model.Professor
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Courses").
		Order("professors.id").
		Find(&professors).Error
	if err != nil {
		return nil, err
	}
	return professors, nil
}

func (r *professorRepo) UpdateWithUser(ctx context.Context, professor *model.Professor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if professor.User != nil {
			if err := tx.Save(professor.User).Error; err != nil {
				return err
			}
		}
		return tx.Omit("User", "Courses").Save(professor).Error
	})
}

func (r *professorRepo) Delete(ctx context.Context, professor *model.Professor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.User{}, professor.UserID).Error
	})
}

func (r *professorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Professor{}).Count(&n).Error
	return n, err
}
