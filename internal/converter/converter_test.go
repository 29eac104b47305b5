package converter

import (
	"testing"
	"time"

	"estatehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestFormatUSD(t *testing.T) {
	tests := map[string]string{
		"2500000":   "$2,500,000",
		"4800000":   "$4,800,000",
		"950":       "$950",
		"1234.5":    "$1,234.50",
		"999999.99": "$999,999.99",
	}
	for in, want := range tests {
		if got := FormatUSD(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatUSD(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestPropertyToResponse(t *testing.T) {
	p := &entity.Property{ID: "x", Title: "Modern Villa", Price: decimal.RequireFromString("2500000"), Sqft: 3500}
	resp := PropertyToResponse(p)
	if resp.PriceLabel != "$2,500,000" || resp.SqftLabel != "3,500" {
		t.Errorf("labels = %q, %q", resp.PriceLabel, resp.SqftLabel)
	}
	if PropertyToResponse(nil) != nil {
		t.Error("nil property should convert to nil")
	}
}

func TestBookingToResponse(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	b := &entity.Booking{
		ID:          first,
		Name:        "Jane",
		Date:        time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local),
		Time:        "9:00 AM",
		MeetingType: entity.MeetingTypeOffline,
	}

	resp := BookingToResponse(b)
	if resp.Date != "2024-12-05" || resp.DateLabel != "Thu, Dec 5" {
		t.Errorf("date = %q / %q", resp.Date, resp.DateLabel)
	}
	if resp.ID != first || resp.MeetingTypeLabel != "In-Person" {
		t.Errorf("MeetingTypeLabel = %q", resp.MeetingTypeLabel)
	}

	list := BookingsToListResponse([]entity.Booking{*b, {ID: second}})
	if list.Total != 2 || list.Bookings[1].ID != second {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestDraftToResponse(t *testing.T) {
	draft := entity.NewBookingFormData()
	resp := DraftToResponse(&draft)
	if resp.Date != nil || resp.DateLabel != "" {
		t.Errorf("empty draft should have no date, got %v %q", resp.Date, resp.DateLabel)
	}

	day := time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local)
	draft.Date = &day
	resp = DraftToResponse(&draft)
	if resp.Date == nil || *resp.Date != "2024-12-05" || resp.DateLabel != "Thursday, December 5, 2024" {
		t.Errorf("date = %v / %q", resp.Date, resp.DateLabel)
	}
	if resp.MeetingType != "online" {
		t.Errorf("MeetingType = %q", resp.MeetingType)
	}
}
