package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/model"
)

// StudentRepository is the student-profile data-access interface.
// Creation, update and deletion all span the users and students tables
// and run inside one transaction.
type StudentRepository interface {
	// CreateWithUser inserts the account then the profile atomically.
	// The profile's user id and code are filled from the generated
	// account id; any failure rolls back both inserts.
	CreateWithUser(ctx context.Context, user *model.User, student *model.Student) error
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	// UpdateWithUser saves the profile and its preloaded user atomically.
	UpdateWithUser(ctx context.Context, student *model.Student) error
	// Delete removes the owning user; the profile row follows via the
	// ON DELETE CASCADE foreign key.
	Delete(ctx context.Context, student *model.Student) error
	Count(ctx context.Context) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates the GORM-backed StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) CreateWithUser(ctx context.Context, user *model.User, student *model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		student.UserID = user.ID
		if student.Code == "" {
			student.Code = model.StudentCode(user.ID, time.Now().Year())
		}
		if err := tx.Create(student).Error; err != nil {
			return err
		}
		student.User = user
		return nil
	})
}

func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("students.id").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) UpdateWithUser(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if student.User != nil {
			if err := tx.Save(student.User).Error; err != nil {
				return err
			}
		}
		return tx.Omit("User").Save(student).Error
	})
}

func (r *studentRepo) Delete(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.User{}, student.UserID).Error
	})
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&n).Error
	return n, err
}
