package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/model"
)

// memStore is a shared in-memory database for the mock repositories.
// IDs come from a single sequence so user and profile IDs diverge like
// they do with real tables.
type memStore struct {
	seq          uint
	users        map[uint]*model.User
	students     map[uint]*model.Student
	professors   map[uint]*model.Professor
	courses      []*model.Course
	events       map[uint]*model.Event
	certificates map[uint]*model.Certificate
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[uint]*model.User),
		students:     make(map[uint]*model.Student),
		professors:   make(map[uint]*model.Professor),
		events:       make(map[uint]*model.Event),
		certificates: make(map[uint]*model.Certificate),
	}
}

func (m *memStore) nextID() uint {
	m.seq++
	return m.seq
}

// ── users ──

type mockUserRepo struct{ store *memStore }

func (r *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) EmailTaken(_ context.Context, email string, excludeUserID uint) (bool, error) {
	for _, user := range r.store.users {
		if user.Email == email && user.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) Update(_ context.Context, user *model.User) error {
	r.store.users[user.ID] = user
	return nil
}

// ── students ──

type mockStudentRepo struct{ store *memStore }

func (r *mockStudentRepo) CreateWithUser(_ context.Context, user *model.User, student *model.Student) error {
	user.ID = r.store.nextID()
	r.store.users[user.ID] = user

	student.ID = r.store.nextID()
	student.UserID = user.ID
	if student.Code == "" {
		student.Code = model.StudentCode(user.ID, time.Now().Year())
	}
	student.User = user
	r.store.students[student.ID] = student
	return nil
}

func (r *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	student, ok := r.store.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	student.User = r.store.users[student.UserID]
	return student, nil
}

func (r *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	out := make([]model.Student, 0, len(r.store.students))
	for id := uint(1); id <= r.store.seq; id++ {
		if student, ok := r.store.students[id]; ok {
			student.User = r.store.users[student.UserID]
			out = append(out, *student)
		}
	}
	return out, nil
}

func (r *mockStudentRepo) UpdateWithUser(_ context.Context, student *model.Student) error {
	if student.User != nil {
		r.store.users[student.User.ID] = student.User
	}
	r.store.students[student.ID] = student
	return nil
}

func (r *mockStudentRepo) Delete(_ context.Context, student *model.Student) error {
	delete(r.store.users, student.UserID)
	delete(r.store.students, student.ID)
	return nil
}

func (r *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.students)), nil
}

// ── professors ──

type mockProfessorRepo struct{ store *memStore }

func (r *mockProfessorRepo) CreateWithUser(_ context.Context, user *model.User, professor *model.Professor) error {
	user.ID = r.store.nextID()
	r.store.users[user.ID] = user

	professor.ID = r.store.nextID()
	professor.UserID = user.ID
	if professor.Code == "" {
		professor.Code = model.ProfessorCode(user.ID)
	}
	professor.User = user
	r.store.professors[professor.ID] = professor
	return nil
}

func (r *mockProfessorRepo) GetByID(_ context.Context, id uint) (*model.Professor, error) {
	professor, ok := r.store.professors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	professor.User = r.store.users[professor.UserID]
	professor.Courses = nil
	for _, course := range r.store.courses {
		if course.ProfessorID == professor.ID {
			professor.Courses = append(professor.Courses, *course)
		}
	}
	return professor, nil
}

func (r *mockProfessorRepo) List(_ context.Context) ([]model.Professor, error) {
	out := make([]model.Professor, 0, len(r.store.professors))
	for id := uint(1); id <= r.store.seq; id++ {
		if _, ok := r.store.professors[id]; ok {
			loaded, _ := r.GetByID(context.Background(), id)
			out = append(out, *loaded)
		}
	}
	return out, nil
}

func (r *mockProfessorRepo) UpdateWithUser(_ context.Context, professor *model.Professor) error {
	if professor.User != nil {
		r.store.users[professor.User.ID] = professor.User
	}
	r.store.professors[professor.ID] = professor
	return nil
}

func (r *mockProfessorRepo) Delete(_ context.Context, professor *model.Professor) error {
	delete(r.store.users, professor.UserID)
	delete(r.store.professors, professor.ID)
	return nil
}

func (r *mockProfessorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.professors)), nil
}

// ── courses ──

type mockCourseRepo struct{ store *memStore }

func (r *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.ID = r.store.nextID()
	r.store.courses = append(r.store.courses, course)
	return nil
}

func (r *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	for _, course := range r.store.courses {
		if course.ID == id {
			r.attachProfessor(course)
			return course, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(r.store.courses))
	for _, course := range r.store.courses {
		r.attachProfessor(course)
		out = append(out, *course)
	}
	return out, nil
}

func (r *mockCourseRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.Course, error) {
	var out []model.Course
	for _, course := range r.store.courses {
		if course.Date.Before(from) || course.Date.After(to) {
			continue
		}
		r.attachProfessor(course)
		out = append(out, *course)
	}
	return out, nil
}

func (r *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	for i, existing := range r.store.courses {
		if existing.ID == course.ID {
			r.store.courses[i] = course
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockCourseRepo) Delete(_ context.Context, id uint) error {
	for i, course := range r.store.courses {
		if course.ID == id {
			r.store.courses = append(r.store.courses[:i], r.store.courses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.courses)), nil
}

func (r *mockCourseRepo) attachProfessor(course *model.Course) {
	professor, ok := r.store.professors[course.ProfessorID]
	if !ok {
		return
	}
	professor.User = r.store.users[professor.UserID]
	course.Professor = professor
}

// ── events ──

type mockEventRepo struct{ store *memStore }

func (r *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	event.ID = r.store.nextID()
	r.store.events[event.ID] = event
	return nil
}

func (r *mockEventRepo) GetByID(_ context.Context, id uint) (*model.Event, error) {
	event, ok := r.store.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return event, nil
}

func (r *mockEventRepo) List(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(r.store.events))
	for id := uint(1); id <= r.store.seq; id++ {
		if event, ok := r.store.events[id]; ok {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (r *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	r.store.events[event.ID] = event
	return nil
}

func (r *mockEventRepo) Delete(_ context.Context, id uint) error {
	delete(r.store.events, id)
	return nil
}

func (r *mockEventRepo) CountUpcoming(_ context.Context, from time.Time) (int64, error) {
	var n int64
	for _, event := range r.store.events {
		if !event.Date.Before(from) {
			n++
		}
	}
	return n, nil
}

// ── certificates ──

type mockCertificateRepo struct{ store *memStore }

func (r *mockCertificateRepo) Create(_ context.Context, cert *model.Certificate) error {
	cert.ID = r.store.nextID()
	r.store.certificates[cert.ID] = cert
	return nil
}

func (r *mockCertificateRepo) GetByID(_ context.Context, id uint) (*model.Certificate, error) {
	cert, ok := r.store.certificates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if student, ok := r.store.students[cert.StudentID]; ok {
		student.User = r.store.users[student.UserID]
		cert.Student = student
	}
	return cert, nil
}

func (r *mockCertificateRepo) List(_ context.Context) ([]model.Certificate, error) {
	out := make([]model.Certificate, 0, len(r.store.certificates))
	for id := uint(1); id <= r.store.seq; id++ {
		if _, ok := r.store.certificates[id]; ok {
			loaded, _ := r.GetByID(context.Background(), id)
			out = append(out, *loaded)
		}
	}
	return out, nil
}

func (r *mockCertificateRepo) Update(_ context.Context, cert *model.Certificate) error {
	r.store.certificates[cert.ID] = cert
	return nil
}

func (r *mockCertificateRepo) Delete(_ context.Context, id uint) error {
	delete(r.store.certificates, id)
	return nil
}

func (r *mockCertificateRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, cert := range r.store.certificates {
		counts[cert.Status]++
	}
	return counts, nil
}
