package repository

import (
	"context"
	"testing"
)

func TestSlotRepository(t *testing.T) {
	repo := NewSlotRepository()

	slots := repo.FindAll()
	if len(slots) != 9 {
		t.Fatalf("len(slots) = %d, want 9", len(slots))
	}

	unavailable := map[string]bool{"11:00 AM": true, "2:00 PM": true}
	for _, s := range slots {
		if s.Available == unavailable[s.Time] {
			t.Errorf("slot %s available = %v", s.Time, s.Available)
		}
	}

	slots[0].Available = false
	if s, _ := repo.FindByTime("9:00 AM"); !s.Available {
		t.Error("FindAll must return a copy of the table")
	}

	if _, ok := repo.FindByTime("6:00 PM"); ok {
		t.Error("unknown label should not be found")
	}
}

func TestPropertyRepository(t *testing.T) {
	repo := NewPropertyRepository()
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("FindAll = %d, %v", len(all), err)
	}

	p, err := repo.FindByID(ctx, "luxury-penthouse")
	if err != nil || p == nil || p.Location != "Manhattan, NY" {
		t.Fatalf("FindByID = %+v, %v", p, err)
	}

	p, err = repo.FindByID(ctx, "castle")
	if err != nil || p != nil {
		t.Errorf("FindByID(unknown) = %+v, %v", p, err)
	}
}
