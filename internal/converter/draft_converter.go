package converter

import (
	"estatehub/internal/delivery/dto"
	"estatehub/internal/domain/entity"
)

// DraftToResponse converts the session draft to DraftResponse DTO
func DraftToResponse(draft *entity.BookingFormData) *dto.DraftResponse {
	response := &dto.DraftResponse{
		Name:             draft.Name,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Time:             draft.Time,
		MeetingType:      string(draft.MeetingType),
		MeetingTypeLabel: draft.MeetingType.Label(),
		Notes:            draft.Notes,
	}

	if draft.Date != nil {
		date := draft.Date.Format(DateFormat)
		response.Date = &date
		response.DateLabel = draft.Date.Format(LongDateFormat)
	}

	return response
}
