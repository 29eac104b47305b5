package http

import (
	"net/http"

	"estatehub/internal/delivery/http/handler"
	"estatehub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	pageHandler       *handler.PageHandler
	propertyHandler   *handler.PropertyHandler
	calendarHandler   *handler.CalendarHandler
	draftHandler      *handler.DraftHandler
	bookingHandler    *handler.BookingHandler
	sessionHandler    *handler.SessionHandler
	corsMiddleware    *middleware.CORSMiddleware
	sessionMiddleware *middleware.SessionMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	pageHandler *handler.PageHandler,
	propertyHandler *handler.PropertyHandler,
	calendarHandler *handler.CalendarHandler,
	draftHandler *handler.DraftHandler,
	bookingHandler *handler.BookingHandler,
	sessionHandler *handler.SessionHandler,
	corsMiddleware *middleware.CORSMiddleware,
	sessionMiddleware *middleware.SessionMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		pageHandler:       pageHandler,
		propertyHandler:   propertyHandler,
		calendarHandler:   calendarHandler,
		draftHandler:      draftHandler,
		bookingHandler:    bookingHandler,
		sessionHandler:    sessionHandler,
		corsMiddleware:    corsMiddleware,
		sessionMiddleware: sessionMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	// Pages
	r.router.HandleFunc("/", r.pageHandler.Home).Methods(http.MethodGet)
	r.router.HandleFunc("/dashboard", r.pageHandler.Dashboard).Methods(http.MethodGet)

	dashboard := r.router.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/month", r.pageHandler.NavigateMonth).Methods(http.MethodPost)
	dashboard.HandleFunc("/date", r.pageHandler.SelectDay).Methods(http.MethodPost)
	dashboard.HandleFunc("/time", r.pageHandler.SelectTime).Methods(http.MethodPost)
	dashboard.HandleFunc("/book", r.pageHandler.Book).Methods(http.MethodPost)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Listings
	api.HandleFunc("/properties", r.propertyHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", r.propertyHandler.GetByID).Methods(http.MethodGet)

	// Calendar and slots
	api.HandleFunc("/calendar", r.calendarHandler.GetCalendar).Methods(http.MethodGet)
	api.HandleFunc("/slots", r.calendarHandler.GetSlots).Methods(http.MethodGet)

	// Draft booking
	api.HandleFunc("/draft", r.draftHandler.GetDraft).Methods(http.MethodGet)
	api.HandleFunc("/draft", r.draftHandler.UpdateDraft).Methods(http.MethodPut)
	api.HandleFunc("/draft/date", r.draftHandler.SelectDate).Methods(http.MethodPost)
	api.HandleFunc("/draft/time", r.draftHandler.SelectTime).Methods(http.MethodPost)

	// Bookings
	api.HandleFunc("/bookings", r.bookingHandler.GetBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings", r.bookingHandler.Submit).Methods(http.MethodPost)

	// Session
	api.HandleFunc("/session", r.sessionHandler.EndSession).Methods(http.MethodDelete)

	// Logging sits inside the session middleware so it sees the session id
	r.router.Use(r.sessionMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
