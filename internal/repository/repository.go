package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User        UserRepository
	Student     StudentRepository
	Professor   ProfessorRepository
	Course      CourseRepository
	Event       EventRepository
	Certificate CertificateRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Student:     NewStudentRepo(db),
		Professor:   NewProfessorRepo(db),
		Course:      NewCourseRepo(db),
		Event:       NewEventRepo(db),
		Certificate: NewCertificateRepo(db),
	}
}
