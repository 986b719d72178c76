package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
)

func newEventFixture() *EventService {
	store := newMemStore()
	return NewEventService(&mockEventRepo{store: store}, zap.NewNop())
}

func eventReq() *dto.EventRequest {
	organizer := "Scolarité"
	return &dto.EventRequest{
		Title:       "Conférence de rentrée",
		Description: "Présentation de l'année universitaire",
		Date:        "2026-09-14",
		Time:        "09:30",
		Location:    "Amphi A",
		Organizer:   &organizer,
		Type:        model.EventConference,
	}
}

func TestEventLifecycle(t *testing.T) {
	svc := newEventFixture()

	created, err := svc.Create(context.Background(), eventReq())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Date != "2026-09-14" || created.Time != "09:30" {
		t.Errorf("date/time = %q %q", created.Date, created.Time)
	}

	req := eventReq()
	req.Location = "Amphi B"
	updated, err := svc.Update(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Location != "Amphi B" {
		t.Errorf("location = %q, want Amphi B", updated.Location)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("get after delete: err = %v, want record not found", err)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc := newEventFixture()

	_, err := svc.Update(context.Background(), 7, eventReq())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record not found", err)
	}
}
