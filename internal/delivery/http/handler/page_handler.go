package handler

import (
	"errors"
	"net/http"

	"estatehub/internal/delivery/dto"
	"estatehub/internal/delivery/http/view"
	"estatehub/internal/usecase"
	"estatehub/pkg/validator"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

const dashboardPath = "/dashboard"

// PageHandler serves the server-rendered pages. Every dashboard button
// submits the whole booking form, so each action first saves the typed
// details and then performs its own change.
type PageHandler struct {
	log              *logrus.Logger
	propertyUsecase  usecase.PropertyUsecase
	dashboardUsecase usecase.DashboardUsecase
	draftUsecase     usecase.DraftUsecase
	calendarUsecase  usecase.CalendarUsecase
	bookingUsecase   usecase.BookingUsecase
	validator        *validator.CustomValidator
	renderer         *view.Renderer
	decoder          *schema.Decoder
}

func NewPageHandler(
	log *logrus.Logger,
	propertyUsecase usecase.PropertyUsecase,
	dashboardUsecase usecase.DashboardUsecase,
	draftUsecase usecase.DraftUsecase,
	calendarUsecase usecase.CalendarUsecase,
	bookingUsecase usecase.BookingUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
) *PageHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &PageHandler{
		log:              log,
		propertyUsecase:  propertyUsecase,
		dashboardUsecase: dashboardUsecase,
		draftUsecase:     draftUsecase,
		calendarUsecase:  calendarUsecase,
		bookingUsecase:   bookingUsecase,
		validator:        validator,
		renderer:         renderer,
		decoder:          decoder,
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyUsecase.GetAll(r.Context())
	if err != nil {
		h.renderer.Error(w, http.StatusInternalServerError, "Failed to load properties")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageHome, view.Page{
		Title: "Find Your Dream Property",
		Data:  properties,
	})
}

func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, http.StatusOK, nil)
}

func (h *PageHandler) NavigateMonth(w http.ResponseWriter, r *http.Request) {
	if !h.saveDetails(w, r) {
		return
	}

	var req dto.NavigateMonthRequest
	if err := h.decoder.Decode(&req, r.PostForm); err != nil || h.validator.Validate(&req) != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid month direction")
		return
	}

	if _, err := h.calendarUsecase.Navigate(r.Context(), &req); err != nil {
		h.failed(w, r, err, "Failed to change month")
		return
	}
	h.redirect(w, r)
}

// SelectDay picks a day of the displayed month; past days are ignored
func (h *PageHandler) SelectDay(w http.ResponseWriter, r *http.Request) {
	if !h.saveDetails(w, r) {
		return
	}

	var req dto.SelectDayRequest
	if err := h.decoder.Decode(&req, r.PostForm); err != nil || h.validator.Validate(&req) != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid day")
		return
	}

	if _, err := h.draftUsecase.SelectDay(r.Context(), &req); err != nil {
		h.failed(w, r, err, "Failed to select date")
		return
	}
	h.redirect(w, r)
}

// SelectTime picks a slot; unavailable slots are ignored
func (h *PageHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	if !h.saveDetails(w, r) {
		return
	}

	var req dto.SelectTimeRequest
	if err := h.decoder.Decode(&req, r.PostForm); err != nil || h.validator.Validate(&req) != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid time slot")
		return
	}

	if _, err := h.draftUsecase.SelectTime(r.Context(), &req); err != nil {
		h.failed(w, r, err, "Failed to select time")
		return
	}
	h.redirect(w, r)
}

// Book submits the form. Missing fields re-render the dashboard with the
// draft intact and the errors next to their fields.
func (h *PageHandler) Book(w http.ResponseWriter, r *http.Request) {
	if !h.saveDetails(w, r) {
		return
	}

	if _, err := h.bookingUsecase.Submit(r.Context()); err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			h.renderDashboard(w, r, http.StatusBadRequest, vErr.Fields)
			return
		}
		h.failed(w, r, err, "Failed to create booking")
		return
	}
	h.redirect(w, r)
}

func (h *PageHandler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, fieldErrors map[string]string) {
	dashboard, err := h.dashboardUsecase.Load(r.Context())
	if err != nil {
		h.failed(w, r, err, "Failed to load dashboard")
		return
	}
	dashboard.Errors = fieldErrors

	h.renderer.Render(w, status, view.PageDashboard, view.Page{
		Title: "Booking Dashboard",
		Data:  dashboard,
	})
}

// saveDetails binds the text fields posted with every dashboard action
func (h *PageHandler) saveDetails(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid form data")
		return false
	}

	var req dto.UpdateDraftRequest
	if err := h.decoder.Decode(&req, r.PostForm); err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid form data")
		return false
	}
	if err := h.validator.Validate(&req); err != nil {
		h.renderer.Error(w, http.StatusBadRequest, "Invalid meeting type")
		return false
	}

	if _, err := h.draftUsecase.UpdateDetails(r.Context(), &req); err != nil {
		h.failed(w, r, err, "Failed to save form")
		return false
	}
	return true
}

func (h *PageHandler) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

// failed renders the error page. A session that ended mid-request sends the
// visitor back to the dashboard, where a fresh session starts.
func (h *PageHandler) failed(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, usecase.ErrSessionExpired) {
		h.redirect(w, r)
		return
	}
	h.log.Errorf("%s: %+v", message, err)
	h.renderer.Error(w, http.StatusInternalServerError, message)
}
