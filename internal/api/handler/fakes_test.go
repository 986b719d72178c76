package handler_test

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/internal/repository"
)

// fakeStore is an in-memory database shared by the fake repositories.
type fakeStore struct {
	seq          uint
	users        map[uint]*model.User
	students     map[uint]*model.Student
	professors   map[uint]*model.Professor
	courses      []*model.Course
	events       map[uint]*model.Event
	certificates map[uint]*model.Certificate
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[uint]*model.User),
		students:     make(map[uint]*model.Student),
		professors:   make(map[uint]*model.Professor),
		events:       make(map[uint]*model.Event),
		certificates: make(map[uint]*model.Certificate),
	}
}

func (s *fakeStore) nextID() uint {
	s.seq++
	return s.seq
}

func (s *fakeStore) repository() *repository.Repository {
	return &repository.Repository{
		User:        &fakeUserRepo{s},
		Student:     &fakeStudentRepo{s},
		Professor:   &fakeProfessorRepo{s},
		Course:      &fakeCourseRepo{s},
		Event:       &fakeEventRepo{s},
		Certificate: &fakeCertificateRepo{s},
	}
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) EmailTaken(_ context.Context, email string, exclude uint) (bool, error) {
	for _, u := range r.s.users {
		if u.Email == email && u.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.s.users[user.ID] = user
	return nil
}

type fakeStudentRepo struct{ s *fakeStore }

func (r *fakeStudentRepo) CreateWithUser(_ context.Context, user *model.User, student *model.Student) error {
	user.ID = r.s.nextID()
	r.s.users[user.ID] = user
	student.ID = r.s.nextID()
	student.UserID = user.ID
	if student.Code == "" {
		student.Code = model.StudentCode(user.ID, time.Now().Year())
	}
	student.User = user
	r.s.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if st, ok := r.s.students[id]; ok {
		st.User = r.s.users[st.UserID]
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) List(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for id := uint(1); id <= r.s.seq; id++ {
		if st, ok := r.s.students[id]; ok {
			st.User = r.s.users[st.UserID]
			out = append(out, *st)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) UpdateWithUser(_ context.Context, student *model.Student) error {
	if student.User != nil {
		r.s.users[student.User.ID] = student.User
	}
	r.s.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, student *model.Student) error {
	delete(r.s.users, student.UserID)
	delete(r.s.students, student.ID)
	return nil
}

func (r *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.students)), nil
}

type fakeProfessorRepo struct{ s *fakeStore }

func (r *fakeProfessorRepo) CreateWithUser(_ context.Context, user *model.User, professor *model.Professor) error {
	user.ID = r.s.nextID()
	r.s.users[user.ID] = user
	professor.ID = r.s.nextID()
	professor.UserID = user.ID
	if professor.Code == "" {
		professor.Code = model.ProfessorCode(user.ID)
	}
	professor.User = user
	r.s.professors[professor.ID] = professor
	return nil
}

func (r *fakeProfessorRepo) GetByID(_ context.Context, id uint) (*model.Professor, error) {
	if p, ok := r.s.professors[id]; ok {
		p.User = r.s.users[p.UserID]
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfessorRepo) List(_ context.Context) ([]model.Professor, error) {
	var out []model.Professor
	for id := uint(1); id <= r.s.seq; id++ {
		if p, ok := r.s.professors[id]; ok {
			p.User = r.s.users[p.UserID]
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfessorRepo) UpdateWithUser(_ context.Context, professor *model.Professor) error {
	if professor.User != nil {
		r.s.users[professor.User.ID] = professor.User
	}
	r.s.professors[professor.ID] = professor
	return nil
}

func (r *fakeProfessorRepo) Delete(_ context.Context, professor *model.Professor) error {
	delete(r.s.users, professor.UserID)
	delete(r.s.professors, professor.ID)
	return nil
}

func (r *fakeProfessorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.professors)), nil
}

type fakeCourseRepo struct{ s *fakeStore }

func (r *fakeCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.ID = r.s.nextID()
	r.s.courses = append(r.s.courses, course)
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	for _, c := range r.s.courses {
		if c.ID == id {
			r.attach(c)
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		r.attach(c)
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.Course, error) {
	var out []model.Course
	for _, c := range r.s.courses {
		if c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		r.attach(c)
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *model.Course) error {
	for i, c := range r.s.courses {
		if c.ID == course.ID {
			r.s.courses[i] = course
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) Delete(_ context.Context, id uint) error {
	for i, c := range r.s.courses {
		if c.ID == id {
			r.s.courses = append(r.s.courses[:i], r.s.courses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.courses)), nil
}

func (r *fakeCourseRepo) attach(course *model.Course) {
	if p, ok := r.s.professors[course.ProfessorID]; ok {
		p.User = r.s.users[p.UserID]
		course.Professor = p
	}
}

type fakeEventRepo struct{ s *fakeStore }

func (r *fakeEventRepo) Create(_ context.Context, event *model.Event) error {
	event.ID = r.s.nextID()
	r.s.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id uint) (*model.Event, error) {
	if e, ok := r.s.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) List(_ context.Context) ([]model.Event, error) {
	var out []model.Event
	for id := uint(1); id <= r.s.seq; id++ {
		if e, ok := r.s.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *model.Event) error {
	r.s.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uint) error {
	delete(r.s.events, id)
	return nil
}

func (r *fakeEventRepo) CountUpcoming(_ context.Context, from time.Time) (int64, error) {
	var n int64
	for _, e := range r.s.events {
		if !e.Date.Before(from) {
			n++
		}
	}
	return n, nil
}

type fakeCertificateRepo struct{ s *fakeStore }

func (r *fakeCertificateRepo) Create(_ context.Context, cert *model.Certificate) error {
	cert.ID = r.s.nextID()
	r.s.certificates[cert.ID] = cert
	return nil
}

func (r *fakeCertificateRepo) GetByID(_ context.Context, id uint) (*model.Certificate, error) {
	cert, ok := r.s.certificates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if st, ok := r.s.students[cert.StudentID]; ok {
		st.User = r.s.users[st.UserID]
		cert.Student = st
	}
	return cert, nil
}

func (r *fakeCertificateRepo) List(_ context.Context) ([]model.Certificate, error) {
	var out []model.Certificate
	for id := uint(1); id <= r.s.seq; id++ {
		if _, ok := r.s.certificates[id]; ok {
			cert, _ := r.GetByID(context.Background(), id)
			out = append(out, *cert)
		}
	}
	return out, nil
}

func (r *fakeCertificateRepo) Update(_ context.Context, cert *model.Certificate) error {
	r.s.certificates[cert.ID] = cert
	return nil
}

func (r *fakeCertificateRepo) Delete(_ context.Context, id uint) error {
	delete(r.s.certificates, id)
	return nil
}

func (r *fakeCertificateRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, cert := range r.s.certificates {
		counts[cert.Status]++
	}
	return counts, nil
}
