package entity

// TimeSlot is a bookable time of day. The same table applies to every date.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
