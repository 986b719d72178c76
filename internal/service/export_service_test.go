package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/internal/dto"
)

func newExportFixture(t *testing.T) (*ExportService, *CourseService, uint) {
	t.Helper()
	planning, courses, _, profID := newPlanningFixture(t)
	return NewExportService(planning, zap.NewNop()), courses, profID
}

func TestWeekExcel(t *testing.T) {
	svc, courses, profID := newExportFixture(t)
	mustCreateCourse(t, courses, courseReq(profID))

	f, err := svc.WeekExcel(context.Background(), &dto.PlanningRequest{Date: "2026-09-09"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Planning", "B1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if header != "Lundi 2026-09-07" {
		t.Errorf("B1 = %q, want the Monday column header", header)
	}

	// The Monday 08:00 cell carries the course label.
	cell, err := f.GetCellValue("Planning", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if !strings.Contains(cell, "Anatomie I") || !strings.Contains(cell, "Dr. Karim Alaoui") {
		t.Errorf("B2 = %q, want course and professor", cell)
	}

	// Continuation rows stay empty so the sheet mirrors the grid.
	cell, err = f.GetCellValue("Planning", "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if cell != "" {
		t.Errorf("B3 = %q, want empty continuation row", cell)
	}
}

func TestCalendarFeed(t *testing.T) {
	svc, courses, profID := newExportFixture(t)
	mustCreateCourse(t, courses, courseReq(profID))

	feed, err := svc.Calendar(context.Background(), &dto.PlanningRequest{Date: "2026-09-09"})
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"SUMMARY:Anatomie I",
		"LOCATION:Amphi A",
		"UID:course-",
		"END:VCALENDAR",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}
