package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
	"github.com/aminbn12/planiunv/internal/repository"
)

// GridSlots are the hourly rows of the day and week grids.
var GridSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// Grid views.
const (
	ViewDay   = "day"
	ViewWeek  = "week"
	ViewMonth = "month"
	ViewYear  = "year"
)

var frenchDays = [7]string{
	"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi",
}

var frenchMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// PlanningService projects the course table into renderable calendar
// grids.
type PlanningService struct {
	courses repository.CourseRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewPlanningService creates the PlanningService.
func NewPlanningService(courses repository.CourseRepository, logger *zap.Logger) *PlanningService {
	return &PlanningService{courses: courses, logger: logger, now: time.Now}
}

// Grid builds the grid for the requested view window. The view
// defaults to week and the date to today.
func (s *PlanningService) Grid(ctx context.Context, req *dto.PlanningRequest) (*dto.PlanningGridResponse, error) {
	view := req.View
	if view == "" {
		view = ViewWeek
	}

	anchor := s.now()
	if req.Date != "" {
		parsed, err := time.Parse(model.DateFormat, req.Date)
		if err != nil {
			return nil, err
		}
		anchor = parsed
	}
	anchor = dateOnly(anchor)

	from, to := viewRange(view, anchor)

	courses, err := s.courses.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	courses = filterCourses(courses, req)

	resp := &dto.PlanningGridResponse{
		View:       view,
		RangeStart: from.Format(model.DateFormat),
		RangeEnd:   to.Format(model.DateFormat),
	}

	switch view {
	case ViewDay, ViewWeek:
		resp.Slots = GridSlots
		resp.Days = buildDays(from, to, courses)
	case ViewMonth:
		resp.Cells = buildMonthCells(from, to, courses)
	case ViewYear:
		resp.Months = buildMonthSummaries(anchor.Year(), courses)
	}

	return resp, nil
}

// Courses returns the filtered course projections of a whole year,
// for the calendar feed.
func (s *PlanningService) Courses(ctx context.Context, req *dto.PlanningRequest) ([]dto.CourseResponse, error) {
	anchor := s.now()
	if req.Date != "" {
		parsed, err := time.Parse(model.DateFormat, req.Date)
		if err != nil {
			return nil, err
		}
		anchor = parsed
	}

	from, to := viewRange(ViewYear, dateOnly(anchor))
	courses, err := s.courses.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	courses = filterCourses(courses, req)

	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out, nil
}

// CourseSpan is the number of hourly rows a course covers.
func CourseSpan(durationMinutes int) int {
	span := (durationMinutes + 59) / 60
	if span < 1 {
		span = 1
	}
	return span
}

// viewRange computes the inclusive date window of a view. Weeks start
// on Monday and run six days, through Saturday.
func viewRange(view string, anchor time.Time) (time.Time, time.Time) {
	switch view {
	case ViewDay:
		return anchor, anchor
	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return first, first.AddDate(0, 1, -1)
	case ViewYear:
		first := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		return first, time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, anchor.Location())
	default: // week
		monday := mondayOf(anchor)
		return monday, monday.AddDate(0, 0, 5)
	}
}

func mondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func filterCourses(courses []model.Course, req *dto.PlanningRequest) []model.Course {
	if req.Year == "" && req.Professor == "" {
		return courses
	}
	out := courses[:0]
	for _, course := range courses {
		if req.Year != "" && course.Year != req.Year {
			continue
		}
		if req.Professor != "" {
			if course.Professor == nil || course.Professor.User == nil ||
				course.Professor.User.Name != req.Professor {
				continue
			}
		}
		out = append(out, course)
	}
	return out
}

// buildDays renders one column per date. For each slot the first
// course in list order that covers it wins; its first row is the head
// and carries the payload, the rest of its span renders as occupied
// empty rows.
func buildDays(from, to time.Time, courses []model.Course) []dto.PlanningDay {
	var days []dto.PlanningDay
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		day := dto.PlanningDay{
			Date:  date.Format(model.DateFormat),
			Day:   frenchDays[date.Weekday()],
			Cells: make([]dto.PlanningCell, 0, len(GridSlots)),
		}
		dated := coursesOn(date, courses)

		for idx, slot := range GridSlots {
			cell := dto.PlanningCell{Time: slot}
			for i := range dated {
				start := slotIndex(clockOf(dated[i].Time))
				if start < 0 {
					continue
				}
				if idx >= start && idx < start+CourseSpan(dated[i].Duration) {
					cell.Occupied = true
					if idx == start {
						cell.Head = true
						resp := toCourseResponse(&dated[i])
						cell.Course = &resp
					}
					break
				}
			}
			day.Cells = append(day.Cells, cell)
		}
		days = append(days, day)
	}
	return days
}

// buildMonthCells renders one cell per date with at most two course
// titles and an overflow counter.
func buildMonthCells(from, to time.Time, courses []model.Course) []dto.MonthCell {
	var cells []dto.MonthCell
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		cell := dto.MonthCell{
			Date:   date.Format(model.DateFormat),
			Titles: []string{},
		}
		for _, course := range coursesOn(date, courses) {
			if len(cell.Titles) < 2 {
				cell.Titles = append(cell.Titles, course.Name)
			} else {
				cell.More++
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

func buildMonthSummaries(year int, courses []model.Course) []dto.MonthSummary {
	summaries := make([]dto.MonthSummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		count := 0
		for _, course := range courses {
			if course.Date.Year() == year && course.Date.Month() == m {
				count++
			}
		}
		summaries = append(summaries, dto.MonthSummary{
			Month:       int(m),
			Label:       frenchMonths[m-1],
			CourseCount: count,
		})
	}
	return summaries
}

func coursesOn(date time.Time, courses []model.Course) []model.Course {
	var out []model.Course
	for _, course := range courses {
		if sameDate(course.Date, date) {
			out = append(out, course)
		}
	}
	return out
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func slotIndex(clock string) int {
	for i, slot := range GridSlots {
		if slot == clock {
			return i
		}
	}
	return -1
}
