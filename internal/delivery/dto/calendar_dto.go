package dto

// Request DTOs

type NavigateMonthRequest struct {
	Dir string `json:"dir" schema:"dir" validate:"required,oneof=prev next"`
}

// Response DTOs

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"` // zero-based
}

type CalendarCell struct {
	Day        int    `json:"day"` // 0 for padding
	Blank      bool   `json:"blank"`
	Date       string `json:"date,omitempty"` // Format: YYYY-MM-DD
	Selectable bool   `json:"selectable"`
	Today      bool   `json:"today"`
	Selected   bool   `json:"selected"`
}

type CalendarResponse struct {
	Year         int              `json:"year"`
	Month        int              `json:"month"` // zero-based
	MonthName    string           `json:"month_name"`
	Title        string           `json:"title"`
	DaysInMonth  int              `json:"days_in_month"`
	FirstWeekday int              `json:"first_weekday"` // 0 = Sunday
	Weekdays     []string         `json:"weekdays"`
	Cells        []CalendarCell   `json:"cells"`
	Weeks        [][]CalendarCell `json:"-"`
	Prev         MonthRef         `json:"prev"`
	Next         MonthRef         `json:"next"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Selected  bool   `json:"selected"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}
