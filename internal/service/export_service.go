package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/aminbn12/planiunv/internal/dto"
	"github.com/aminbn12/planiunv/internal/model"
)

// ExportService renders the planning as downloadable documents.
type ExportService struct {
	planning *PlanningService
	logger   *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(planning *PlanningService, logger *zap.Logger) *ExportService {
	return &ExportService{planning: planning, logger: logger}
}

// WeekExcel renders the week grid of the requested window as an xlsx
// workbook, one row per hourly slot and one column per day.
func (s *ExportService) WeekExcel(ctx context.Context, req *dto.PlanningRequest) (*excelize.File, error) {
	weekReq := *req
	weekReq.View = ViewWeek
	grid, err := s.planning.Grid(ctx, &weekReq)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Planning"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetCellValue(sheet, "A1", "Heure"); err != nil {
		return nil, err
	}
	for col, day := range grid.Days {
		cell, err := excelize.CoordinatesToCellName(col+2, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, day.Day+" "+day.Date); err != nil {
			return nil, err
		}
	}

	for row, slot := range grid.Slots {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, slot); err != nil {
			return nil, err
		}
		for col, day := range grid.Days {
			c := day.Cells[row]
			if !c.Head || c.Course == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+2, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, excelCourseLabel(c.Course)); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 10); err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(grid.Days) + 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", lastCol, 30); err != nil {
		return nil, err
	}

	s.logger.Info("planning exported",
		zap.String("range_start", grid.RangeStart),
		zap.String("range_end", grid.RangeEnd))

	return f, nil
}

func excelCourseLabel(course *dto.CourseResponse) string {
	label := fmt.Sprintf("%s\n%s", course.Name, course.Professor)
	if course.Room != nil {
		label += "\n" + *course.Room
	}
	return label
}

// Calendar renders the current year's filtered courses as an iCalendar
// feed.
func (s *ExportService) Calendar(ctx context.Context, req *dto.PlanningRequest) (string, error) {
	courses, err := s.planning.Courses(ctx, req)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//PlaniUnv//Planning//FR")

	for _, course := range courses {
		start, err := time.ParseInLocation(
			model.DateFormat+" "+model.ClockFormat,
			course.Date+" "+course.Time,
			time.Local)
		if err != nil {
			return "", err
		}
		end := start.Add(time.Duration(course.Duration) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("course-%d@planiunv", course.ID))
		event.SetSummary(course.Name)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetDescription(fmt.Sprintf("%s - %s", course.Professor, course.Year))
		if course.Room != nil {
			event.SetLocation(*course.Room)
		}
		event.SetDtStampTime(time.Now())
	}

	return cal.Serialize(), nil
}
