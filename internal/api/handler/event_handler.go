package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/service"
	"github.com/aminbn12/planiunv/pkg/response"
)

// EventHandler serves the event CRUD endpoints.
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler creates the EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// List GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Erreur lors de la récupération des événements")
		return
	}
	response.OK(c, events)
}

// Get GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Événement introuvable")
		return
	}

	event, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la récupération de l'événement")
		return
	}
	response.OK(c, event)
}

// Create POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	event, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la création de l'événement")
		return
	}
	response.Created(c, event)
}

// Update PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Événement introuvable")
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	event, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err, "Erreur lors de la mise à jour de l'événement")
		return
	}
	response.OK(c, event)
}

// Delete DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.NotFound(c, "Événement introuvable")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Erreur lors de la suppression de l'événement")
		return
	}
	response.Message(c, "Événement supprimé avec succès")
}

func (h *EventHandler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Événement introuvable")
		return
	}
	response.InternalError(c, fallback)
}
