package view

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estatehub/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	r, err := NewRenderer(log)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderEscapesUserInput(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusBadRequest, PageDashboard, Page{
		Title: "Booking Dashboard",
		Data: &dto.DashboardView{
			Draft:  dto.DraftResponse{Name: `<script>alert(1)</script>`, MeetingType: "online"},
			Errors: map[string]string{"email": "email is required"},
		},
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("draft name was not escaped")
	}
	for _, want := range []string{"Please fill in all required fields", "email is required", "Please select a date from the calendar"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusOK, "missing.html", Page{})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestError(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Error(rec, http.StatusNotFound, "Property not found")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Property not found") {
		t.Errorf("got %d: %s", rec.Code, rec.Body.String())
	}
}
