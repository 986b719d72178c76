package dto

// EventRequest is the create/update payload for an event.
type EventRequest struct {
	Title       string  `json:"title"       binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date"        binding:"required,datetime=2006-01-02"`
	Time        string  `json:"time"        binding:"required,datetime=15:04"`
	Location    string  `json:"location"    binding:"required"`
	Organizer   *string `json:"organizer"   binding:"omitempty"`
	Type        string  `json:"type"        binding:"required,oneof=meeting exam conference other"`
}

// EventResponse is the event projection.
type EventResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Organizer   *string `json:"organizer"`
	Type        string  `json:"type"`
}
