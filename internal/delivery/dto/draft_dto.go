package dto

// Request DTOs

// UpdateDraftRequest binds the free-text fields of the booking form.
// It is decoded from JSON by the API and from form values by the dashboard.
type UpdateDraftRequest struct {
	Name        string `json:"name" schema:"name"`
	Email       string `json:"email" schema:"email"`
	Phone       string `json:"phone" schema:"phone"`
	MeetingType string `json:"meeting_type" schema:"meeting_type" validate:"omitempty,oneof=online offline"`
	Notes       string `json:"notes" schema:"notes"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectDayRequest struct {
	Day int `json:"day" schema:"day" validate:"required,min=1,max=31"`
}

type SelectTimeRequest struct {
	Time string `json:"time" schema:"time" validate:"required"`
}

// Response DTOs

type DraftResponse struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Date             *string `json:"date"`       // Format: YYYY-MM-DD, null until selected
	DateLabel        string  `json:"date_label"` // e.g. "Thursday, December 5, 2024"
	Time             string  `json:"time"`
	MeetingType      string  `json:"meeting_type"`
	MeetingTypeLabel string  `json:"meeting_type_label"`
	Notes            string  `json:"notes"`
}
