package dto

// DashboardView is everything the dashboard page renders for one session
type DashboardView struct {
	Draft    DraftResponse       `json:"draft"`
	Calendar CalendarResponse    `json:"calendar"`
	Slots    SlotListResponse    `json:"slots"`
	Bookings BookingListResponse `json:"bookings"`
	Notice   string              `json:"notice,omitempty"`
	Errors   map[string]string   `json:"errors,omitempty"`
}
