package handler

import "github.com/aminbn12/planiunv/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	Student     *StudentHandler
	Professor   *ProfessorHandler
	Course      *CourseHandler
	Event       *EventHandler
	Certificate *CertificateHandler
	Planning    *PlanningHandler
	Stats       *StatsHandler
}

// NewHandler wires the handlers onto the services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Student:     NewStudentHandler(svc.Student),
		Professor:   NewProfessorHandler(svc.Professor),
		Course:      NewCourseHandler(svc.Course),
		Event:       NewEventHandler(svc.Event),
		Certificate: NewCertificateHandler(svc.Certificate),
		Planning:    NewPlanningHandler(svc.Planning, svc.Export),
		Stats:       NewStatsHandler(svc.Stats),
	}
}
