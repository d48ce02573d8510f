package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/azamanzizi-droid/ku2cash/internal/models"
	"github.com/azamanzizi-droid/ku2cash/internal/schedule"
	"github.com/azamanzizi-droid/ku2cash/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps core errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.MemberBalances())
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := s.svc.AddMember(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (s *Server) handleRenameMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.svc.RenameMember(r.Context(), id, req.Name); err != nil {
		writeServiceError(w, err)
		return
	}

	// The core treats an unknown id as a no-op; surface it as 404 here so
	// the client can tell the difference.
	for _, m := range s.svc.Members() {
		if m.ID == id {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	writeError(w, http.StatusNotFound, "member not found")
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments := s.svc.Payments()
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (s *Server) handleAddPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MemberID int64   `json:"memberId"`
		Amount   float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := s.svc.AddPayment(r.Context(), req.MemberID, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (s *Server) handlePaymentSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.PaymentSummary())
}

// scheduleEntryView decorates a schedule entry with its projected payout
// date and its position relative to the current week.
type scheduleEntryView struct {
	Week          int             `json:"week"`
	Member        models.Member   `json:"member"`
	ProjectedDate string          `json:"projectedDate"`
	Status        schedule.Status `json:"status"`
}

// startDate parses the configured start date, falling back to today when
// the stored value is malformed.
func (s *Server) startDate() time.Time {
	start, err := s.svc.Settings().ParseStartDate()
	if err != nil {
		return time.Now()
	}
	return start
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	entries := s.svc.Schedule()
	start := s.startDate()
	currentWeek := schedule.CurrentWeek(start, time.Now(), schedule.DefaultPeriodDays, len(entries))

	views := make([]scheduleEntryView, len(entries))
	for i, e := range entries {
		payout := schedule.ProjectedPayoutDate(start, e.Week, schedule.DefaultPeriodDays)
		views[i] = scheduleEntryView{
			Week:          e.Week,
			Member:        e.Member,
			ProjectedDate: payout.Format(models.StartDateLayout),
			Status:        schedule.StatusOf(e.Week, currentWeek),
		}
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleReorderSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []int64 `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.svc.ReorderSchedule(r.Context(), req.Order)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// calendarView is the month grid around one payout date, for the calendar
// detail modal.
type calendarView struct {
	Week       int                `json:"week"`
	Member     models.Member      `json:"member"`
	PayoutDate string             `json:"payoutDate"`
	Grid       schedule.MonthGrid `json:"grid"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week")
		return
	}

	var entry *models.ScheduleEntry
	for _, e := range s.svc.Schedule() {
		if e.Week == week {
			entry = &e
			break
		}
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "no such week")
		return
	}

	payout := schedule.ProjectedPayoutDate(s.startDate(), week, schedule.DefaultPeriodDays)
	writeJSON(w, http.StatusOK, calendarView{
		Week:       week,
		Member:     entry.Member,
		PayoutDate: payout.Format(models.StartDateLayout),
		Grid:       schedule.GridFor(payout),
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Settings())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated := s.svc.UpdateSettings(r.Context(), req)
	writeJSON(w, http.StatusOK, updated)
}
