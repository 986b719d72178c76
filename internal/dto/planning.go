package dto

// PlanningRequest selects the view window and optional filters of the
// planning grid.
type PlanningRequest struct {
	View      string `form:"view"      binding:"omitempty,oneof=day week month year"`
	Date      string `form:"date"      binding:"omitempty,datetime=2006-01-02"`
	Year      string `form:"year"`      // academic year label filter, e.g. "3ème année"
	Professor string `form:"professor"` // professor display-name filter
}

// PlanningGridResponse is the renderable grid for one view window.
// Days is set for day/week views, Cells for month view, Months for
// year view.
type PlanningGridResponse struct {
	View       string          `json:"view"`
	RangeStart string          `json:"rangeStart"`
	RangeEnd   string          `json:"rangeEnd"`
	Slots      []string        `json:"slots,omitempty"`
	Days       []PlanningDay   `json:"days,omitempty"`
	Cells      []MonthCell     `json:"cells,omitempty"`
	Months     []MonthSummary  `json:"months,omitempty"`
}

// PlanningDay is one column of the day/week grid.
type PlanningDay struct {
	Date  string         `json:"date"`
	Day   string         `json:"day"`
	Cells []PlanningCell `json:"cells"`
}

// PlanningCell is one (date, hour-slot) cell. A course's first
// occupied row is its head and carries the course payload; the
// following rows of its span are occupied but empty, so the client
// renders a single card per course. Free cells accept the "add course
// here" interaction.
type PlanningCell struct {
	Time     string          `json:"time"`
	Occupied bool            `json:"occupied"`
	Head     bool            `json:"head"`
	Course   *CourseResponse `json:"course,omitempty"`
}

// MonthCell summarizes one date of the month view: at most two course
// titles plus an overflow counter.
type MonthCell struct {
	Date   string   `json:"date"`
	Titles []string `json:"titles"`
	More   int      `json:"more"`
}

// MonthSummary is one month card of the year view.
type MonthSummary struct {
	Month       int    `json:"month"`
	Label       string `json:"label"`
	CourseCount int    `json:"courseCount"`
}
