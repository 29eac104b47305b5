package calendar

import (
	"fmt"
	"time"
)

// WeekdayLabels are the column headers of a Sunday-first month grid
var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Month identifies a calendar month. Month is zero-based (0 = January, 11 = December).
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewMonth returns the month for the given year and zero-based month index.
// Indexes outside 0..11 roll over into neighbouring years, so -1 is December
// of the previous year and 12 is January of the next one.
func NewMonth(year, month int) Month {
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return Month{Year: year, Month: month}
}

// Of returns the month containing t
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Prev returns the month before m
func (m Month) Prev() Month {
	return NewMonth(m.Year, m.Month-1)
}

// Next returns the month after m
func (m Month) Next() Month {
	return NewMonth(m.Year, m.Month+1)
}

// Days returns the number of days in m
func (m Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

// FirstWeekday returns the weekday index (0 = Sunday) of the first day of m
func (m Month) FirstWeekday() int {
	return FirstWeekday(m.Year, m.Month)
}

// Name returns the English month name, e.g. "December"
func (m Month) Name() string {
	return time.Month(m.Month + 1).String()
}

// String renders m as "December 2024"
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Name(), m.Year)
}

// Date returns midnight of the given day of m in loc
func (m Month) Date(day int, loc *time.Location) time.Time {
	return time.Date(m.Year, time.Month(m.Month+1), day, 0, 0, 0, 0, loc)
}

// Contains reports whether t falls inside m
func (m Month) Contains(t time.Time) bool {
	return Of(t) == m
}

// DaysIn returns the number of days in the given month: the day before the
// first day of the following month.
func DaysIn(year, month int) int {
	m := NewMonth(year, month)
	return time.Date(m.Year, time.Month(m.Month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index (0 = Sunday .. 6 = Saturday) of day 1
func FirstWeekday(year, month int) int {
	m := NewMonth(year, month)
	return int(m.Date(1, time.UTC).Weekday())
}

// IsLeap reports whether year is a Gregorian leap year
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Cell is one square of a month grid. Day is zero for leading/trailing blanks.
type Cell struct {
	Day int `json:"day"`
}

// Blank reports whether the cell is padding
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid returns the cells of m: FirstWeekday blanks followed by days 1..Days
func (m Month) Grid() []Cell {
	offset := m.FirstWeekday()
	days := m.Days()

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day})
	}
	return cells
}

// Weeks splits cells into rows of seven, padding the last row with blanks
func Weeks[T any](cells []T, blank T) [][]T {
	var weeks [][]T
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		row := make([]T, 0, 7)
		if end > len(cells) {
			row = append(row, cells[start:]...)
			for len(row) < 7 {
				row = append(row, blank)
			}
		} else {
			row = append(row, cells[start:end]...)
		}
		weeks = append(weeks, row)
	}
	return weeks
}
