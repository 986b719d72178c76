package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/internal/repository"
)

// EventService manages calendar events.
type EventService struct {
	events repository.EventRepository
	logger *zap.Logger
}

// NewEventService creates the EventService.
func NewEventService(events repository.EventRepository, logger *zap.Logger) *EventService {
	return &EventService{events: events, logger: logger}
}

// Create registers an event.
func (s *EventService) Create(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.Uint("event_id", event.ID),
		zap.String("title", event.Title))

	resp := toEventResponse(event)
	return &resp, nil
}

// Get returns one event projection.
func (s *EventService) Get(ctx context.Context, id uint) (*dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// List returns all event projections in insertion order.
func (s *EventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	return out, nil
}

// Update rewrites every event field from the request.
func (s *EventService) Update(ctx context.Context, id uint, req *dto.EventRequest) (*dto.EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.BaseModel = event.BaseModel

	if err := s.events.Update(ctx, updated); err != nil {
		return nil, err
	}

	resp := toEventResponse(updated)
	return &resp, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	if _, err := s.events.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("event deleted", zap.Uint("event_id", id))
	return nil
}

func eventFromRequest(req *dto.EventRequest) (*model.Event, error) {
	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	return &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Type:        req.Type,
	}, nil
}

func toEventResponse(event *model.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Format(model.DateFormat),
		Time:        clockOf(event.Time),
		Location:    event.Location,
		Organizer:   event.Organizer,
		Type:        event.Type,
	}
}
