package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// ProfessorHandler serves the professor CRUD endpoints.
type ProfessorHandler struct {
	svc *service.ProfessorService
}

// NewProfessorHandler creates the ProfessorHandler.
func NewProfessorHandler(svc *service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{svc: svc}
}

// List GET /api/professors
func (h *ProfessorHandler) List(c *gin.Context) {
	professors, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erreur lors de la récupération des professeurs")
		return
	}
	response.OK(c, professors)
}

// Get GET /api/professors/:id
func (h *ProfessorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Professeur introuvable")
		return
	}

	professor, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la récupération du professeur")
		return
	}
	response.OK(c, professor)
}

// Create POST /api/professors
func (h *ProfessorHandler) Create(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	professor, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la création du professeur")
		return
	}
	response.Created(c, professor)
}

// Update PUT /api/professors/:id
func (h *ProfessorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Professeur introuvable")
		return
	}

	var req dto.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	professor, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la mise à jour du professeur")
		return
	}
	response.OK(c, professor)
}

// Delete DELETE /api/professors/:id
func (h *ProfessorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Professeur introuvable")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Erreur lors de la suppression du professeur")
		return
	}
	response.Message(c, "Professeur supprimé avec succès")
}

func (h *ProfessorHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Professeur introuvable")
	case errors.Is(err, service.ErrEmailTaken):
		response.FieldError(c, "email", "Cette adresse e-mail est déjà utilisée.")
	default:
		response.InternalError(c, fallback)
	}
}
