package handler

import (
	"errors"
	"net/http"
	"strconv"

	"estatehub/internal/usecase"
	"estatehub/pkg/calendar"
	"estatehub/pkg/response"
)

var errInvalidMonthQuery = errors.New("year and month must be given together as integers")

type CalendarHandler struct {
	calendarUsecase usecase.CalendarUsecase
}

func NewCalendarHandler(calendarUsecase usecase.CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{
		calendarUsecase: calendarUsecase,
	}
}

// GetCalendar renders ?year=YYYY&month=M (zero-based) or the session's month
func (h *CalendarHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	cal, err := h.calendarUsecase.GetMonth(r.Context(), month)
	if err != nil {
		response.InternalServerError(w, "Failed to get calendar")
		return
	}

	response.Success(w, http.StatusOK, "Calendar retrieved successfully", cal)
}

func (h *CalendarHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.calendarUsecase.GetSlots(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

func parseMonthQuery(r *http.Request) (*calendar.Month, error) {
	q := r.URL.Query()
	yearStr, monthStr := q.Get("year"), q.Get("month")
	if yearStr == "" && monthStr == "" {
		return nil, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, errInvalidMonthQuery
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, errInvalidMonthQuery
	}

	m := calendar.NewMonth(year, month)
	return &m, nil
}
