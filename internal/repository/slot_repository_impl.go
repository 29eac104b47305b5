package repository

import (
	"estatehub/internal/domain/entity"
	domainRepo "estatehub/internal/domain/repository"
)

// defaultTimeSlots is shared by every date
var defaultTimeSlots = []entity.TimeSlot{
	{Time: "9:00 AM", Available: true},
	{Time: "10:00 AM", Available: true},
	{Time: "11:00 AM", Available: false},
	{Time: "12:00 PM", Available: true},
	{Time: "1:00 PM", Available: true},
	{Time: "2:00 PM", Available: false},
	{Time: "3:00 PM", Available: true},
	{Time: "4:00 PM", Available: true},
	{Time: "5:00 PM", Available: true},
}

type staticSlotRepository struct {
	slots []entity.TimeSlot
}

func NewSlotRepository() domainRepo.SlotRepository {
	return NewStaticSlotRepository(defaultTimeSlots)
}

func NewStaticSlotRepository(slots []entity.TimeSlot) domainRepo.SlotRepository {
	return &staticSlotRepository{slots: slots}
}

func (r *staticSlotRepository) FindAll() []entity.TimeSlot {
	slots := make([]entity.TimeSlot, len(r.slots))
	copy(slots, r.slots)
	return slots
}

func (r *staticSlotRepository) FindByTime(label string) (*entity.TimeSlot, bool) {
	for _, slot := range r.slots {
		if slot.Time == label {
			s := slot
			return &s, true
		}
	}
	return nil, false
}
