package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// CourseHandler serves the course CRUD endpoints.
type CourseHandler struct {
	svc *service.CourseService
}

// NewCourseHandler creates the CourseHandler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// List GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erreur lors de la récupération des cours")
		return
	}
	response.OK(c, courses)
}

// Get GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Cours introuvable")
		return
	}

	course, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la récupération du cours")
		return
	}
	response.OK(c, course)
}

// Create POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	course, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la création du cours")
		return
	}
	response.Created(c, course)
}

// Update PUT /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Cours introuvable")
		return
	}

	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	course, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la mise à jour du cours")
		return
	}
	response.OK(c, course)
}

// Delete DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Cours introuvable")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Erreur lors de la suppression du cours")
		return
	}
	response.Message(c, "Cours supprimé avec succès")
}

func (h *CourseHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProfessorNotFound):
		response.FieldError(c, "professorId", "Le professeur sélectionné est invalide.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Cours introuvable")
	default:
		response.InternalError(c, fallback)
	}
}
