package usecase

import (
	"context"
	"testing"

	"estatehub/internal/repository"
)

func TestPropertyUsecase(t *testing.T) {
	u := NewPropertyUsecase(repository.NewPropertyRepository())
	ctx := context.Background()

	list, err := u.GetAll(ctx)
	if err != nil || len(list.Properties) != 3 {
		t.Fatalf("GetAll = %+v, %v", list, err)
	}
	if list.Properties[2].Title != "Oceanfront Estate" || list.Properties[2].PriceLabel != "$4,800,000" {
		t.Errorf("unexpected third listing %+v", list.Properties[2])
	}

	if _, err := u.GetByID(ctx, "igloo"); err != ErrPropertyNotFound {
		t.Errorf("err = %v, want ErrPropertyNotFound", err)
	}
}
