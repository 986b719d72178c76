package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// CertificateHandler serves the certificate-request endpoints.
type CertificateHandler struct {
	svc *service.CertificateService
}

// NewCertificateHandler creates the CertificateHandler.
func NewCertificateHandler(svc *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

// List GET /api/certificates
func (h *CertificateHandler) List(c *gin.Context) {
	certificates, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erreur lors de la récupération des certificats")
		return
	}
	response.OK(c, certificates)
}

// Get GET /api/certificates/:id
func (h *CertificateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Certificat introuvable")
		return
	}

	certificate, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la récupération du certificat")
		return
	}
	response.OK(c, certificate)
}

// Create POST /api/certificates
func (h *CertificateHandler) Create(c *gin.Context) {
	var req dto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	certificate, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la création du certificat")
		return
	}
	response.Created(c, certificate)
}

// Update PUT /api/certificates/:id
func (h *CertificateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Certificat introuvable")
		return
	}

	var req dto.UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	certificate, err := h.svc.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la mise à jour du certificat")
		return
	}
	response.OK(c, certificate)
}

// Delete DELETE /api/certificates/:id
func (h *CertificateHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Certificat introuvable")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Erreur lors de la suppression du certificat")
		return
	}
	response.Message(c, "Certificat supprimé avec succès")
}

func (h *CertificateHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.FieldError(c, "studentId", "L'étudiant sélectionné est invalide.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Certificat introuvable")
	default:
		response.InternalError(c, fallback)
	}
}
