package usecase

import (
	"testing"
	"time"

	"estatehub/internal/delivery/dto"
	"estatehub/pkg/calendar"
)

func TestBuildCalendar(t *testing.T) {
	selected := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.Local)
	cal := BuildCalendar(calendar.Month{Year: 2024, Month: 11}, testNow, &selected)

	if cal.Title != "December 2024" || cal.DaysInMonth != 31 || cal.FirstWeekday != 0 {
		t.Fatalf("unexpected header %+v", cal)
	}
	if len(cal.Cells) != 31 {
		t.Fatalf("len(cells) = %d, want 31 (December 2024 starts on Sunday)", len(cal.Cells))
	}
	if cal.Prev != (dto.MonthRef{Year: 2024, Month: 10}) || cal.Next != (dto.MonthRef{Year: 2025, Month: 0}) {
		t.Errorf("prev/next = %+v / %+v", cal.Prev, cal.Next)
	}

	for _, c := range cal.Cells {
		wantSelectable := c.Day >= 10
		if c.Selectable != wantSelectable {
			t.Errorf("day %d selectable = %v", c.Day, c.Selectable)
		}
		if c.Today != (c.Day == 10) {
			t.Errorf("day %d today = %v", c.Day, c.Today)
		}
		if c.Selected != (c.Day == 20) {
			t.Errorf("day %d selected = %v", c.Day, c.Selected)
		}
	}

	if len(cal.Weeks) != 5 || len(cal.Weeks[4]) != 7 || !cal.Weeks[4][6].Blank {
		t.Errorf("unexpected weeks layout")
	}
}

func TestBuildCalendarLeadingBlanks(t *testing.T) {
	cal := BuildCalendar(calendar.Month{Year: 2024, Month: 10}, testNow, nil)

	// November 1 2024 is a Friday
	for i := 0; i < 5; i++ {
		if !cal.Cells[i].Blank || cal.Cells[i].Selectable {
			t.Errorf("cell %d should be a blank, got %+v", i, cal.Cells[i])
		}
	}
	if cal.Cells[5].Day != 1 || cal.Cells[5].Date != "2024-11-01" {
		t.Errorf("first day cell = %+v", cal.Cells[5])
	}
}

func TestNavigate(t *testing.T) {
	f := newFixture(t)

	cal, err := f.calendar.GetMonth(f.ctx, nil)
	if err != nil || cal.Title != "December 2024" {
		t.Fatalf("GetMonth = %+v, %v", cal, err)
	}

	cal, _ = f.calendar.Navigate(f.ctx, &dto.NavigateMonthRequest{Dir: DirectionNext})
	if cal.Year != 2025 || cal.Month != 0 {
		t.Errorf("next = %d/%d, want 2025/0", cal.Year, cal.Month)
	}

	f.calendar.Navigate(f.ctx, &dto.NavigateMonthRequest{Dir: DirectionPrev})
	cal, _ = f.calendar.Navigate(f.ctx, &dto.NavigateMonthRequest{Dir: DirectionPrev})
	if cal.Year != 2024 || cal.Month != 10 {
		t.Errorf("after next, prev, prev = %d/%d, want 2024/10", cal.Year, cal.Month)
	}

	if _, err := f.calendar.Navigate(f.ctx, &dto.NavigateMonthRequest{Dir: "sideways"}); err != ErrInvalidDirection {
		t.Errorf("err = %v, want ErrInvalidDirection", err)
	}
}

func TestGetMonthExplicit(t *testing.T) {
	f := newFixture(t)

	cal, err := f.calendar.GetMonth(f.ctx, &calendar.Month{Year: 2024, Month: 1})
	if err != nil {
		t.Fatalf("GetMonth: %v", err)
	}
	if cal.DaysInMonth != 29 {
		t.Errorf("February 2024 has %d days, want 29", cal.DaysInMonth)
	}
	for _, c := range cal.Cells {
		if c.Selectable {
			t.Errorf("February 2024 is in the past, day %d selectable", c.Day)
		}
	}

	cal, _ = f.calendar.GetMonth(f.ctx, &calendar.Month{Year: 2024, Month: 12})
	if cal.Year != 2025 || cal.Month != 0 {
		t.Errorf("month 12 should normalize to January 2025, got %d/%d", cal.Year, cal.Month)
	}
}

func TestGetSlots(t *testing.T) {
	f := newFixture(t)
	f.drafts.SelectTime(f.ctx, &dto.SelectTimeRequest{Time: "3:00 PM"})

	slots, err := f.calendar.GetSlots(f.ctx)
	if err != nil {
		t.Fatalf("GetSlots: %v", err)
	}
	if len(slots.Slots) != 9 {
		t.Fatalf("len(slots) = %d", len(slots.Slots))
	}
	for _, s := range slots.Slots {
		if s.Selected != (s.Time == "3:00 PM") {
			t.Errorf("slot %s selected = %v", s.Time, s.Selected)
		}
	}
}
