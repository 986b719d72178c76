package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// StudentHandler serves the student CRUD endpoints.
type StudentHandler struct {
	svc *service.StudentService
}

// NewStudentHandler creates the StudentHandler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// List GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erreur lors de la récupération des étudiants")
		return
	}
	response.OK(c, students)
}

// Get GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Étudiant introuvable")
		return
	}

	student, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la récupération de l'étudiant")
		return
	}
	response.OK(c, student)
}

// Create POST /api/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	student, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la création de l'étudiant")
		return
	}
	response.Created(c, student)
}

// Update PUT /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Étudiant introuvable")
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	student, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la mise à jour de l'étudiant")
		return
	}
	response.OK(c, student)
}

// Delete DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Étudiant introuvable")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Erreur lors de la suppression de l'étudiant")
		return
	}
	response.Message(c, "Étudiant supprimé avec succès")
}

func (h *StudentHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Étudiant introuvable")
	case errors.Is(err, service.ErrEmailTaken):
		response.FieldError(c, "email", "Cette adresse e-mail est déjà utilisée.")
	default:
		response.InternalError(c, fallback)
	}
}
