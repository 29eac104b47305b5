package repository

import "estatehub/internal/domain/entity"

type SlotRepository interface {
	FindAll() []entity.TimeSlot
	FindByTime(label string) (*entity.TimeSlot, bool)
}
