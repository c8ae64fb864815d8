package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/habitual/internal/analytics"
	"github.com/limbo/habitual/internal/service"
	"github.com/limbo/habitual/pkg/entity"
	"github.com/limbo/habitual/pkg/httputil"
)

type CompletionRequest struct {
	// YYYY-MM-DD, today when empty
	Date     *string `json:"date,omitempty"`
	Duration *int    `json:"duration,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type SkipRequest struct {
	Date   *string `json:"date,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

type CompletionResponse struct {
	ID        int64     `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"`
	Duration  *int      `json:"duration,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SkipResponse struct {
	ID        int64     `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func completionResponse(c entity.Completion) CompletionResponse {
	return CompletionResponse{
		ID:        c.ID,
		HabitID:   c.HabitID.String(),
		Date:      c.Date.Format(analytics.DateLayout),
		Duration:  c.Duration,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func skipResponse(s entity.Skip) SkipResponse {
	return SkipResponse{
		ID:        s.ID,
		HabitID:   s.HabitID.String(),
		Date:      s.Date.Format(analytics.DateLayout),
		Reason:    s.Reason,
		CreatedAt: s.CreatedAt,
	}
}

// optionalDate parses a YYYY-MM-DD value; nil and "" mean absent.
func optionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	d, err := analytics.ParseDay(*v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func dateRangeFromQuery(r *http.Request) (service.DateRange, error) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	var (
		period service.DateRange
		err    error
	)
	if period.From, err = optionalDate(&from); err != nil {
		return period, err
	}
	if period.To, err = optionalDate(&to); err != nil {
		return period, err
	}
	return period, nil
}

func (s *Server) CreateCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	var req CompletionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	c, err := s.ledgerService.Complete(ctx, habitID, uid, &service.CompletionRequest{
		Date:     date,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "completion", hideForeignHabit(err))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, completionResponse(*c))
	logger.WithField("habit_id", habitID.String()).Info("habit completed")
}

func (s *Server) ListCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	period, err := dateRangeFromQuery(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	completions, err := s.ledgerService.ListCompletions(ctx, habitID, uid, period)
	if err != nil {
		writeServiceError(w, logger, "listing completions", hideForeignHabit(err))
		return
	}
	resp := make([]CompletionResponse, 0, len(completions))
	for _, c := range completions {
		resp = append(resp, completionResponse(c))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"completions": resp})
}

func (s *Server) DeleteCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	date, err := analytics.ParseDay(r.PathValue("date"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.ledgerService.Uncomplete(ctx, habitID, uid, date); err != nil {
		writeServiceError(w, logger, "removing completion", hideForeignHabit(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) CreateSkip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	var req SkipRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Warn("skip error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	sk, err := s.ledgerService.Skip(ctx, habitID, uid, &service.SkipRequest{
		Date:   date,
		Reason: req.Reason,
	})
	if err != nil {
		writeServiceError(w, logger, "skip", hideForeignHabit(err))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, skipResponse(*sk))
	logger.WithField("habit_id", habitID.String()).Info("habit skipped")
}

func (s *Server) ListSkips(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	period, err := dateRangeFromQuery(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	skips, err := s.ledgerService.ListSkips(ctx, habitID, uid, period)
	if err != nil {
		writeServiceError(w, logger, "listing skips", hideForeignHabit(err))
		return
	}
	resp := make([]SkipResponse, 0, len(skips))
	for _, sk := range skips {
		resp = append(resp, skipResponse(sk))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"skips": resp})
}

func (s *Server) DeleteSkip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	date, err := analytics.ParseDay(r.PathValue("date"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.ledgerService.Unskip(ctx, habitID, uid, date); err != nil {
		writeServiceError(w, logger, "removing skip", hideForeignHabit(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) HabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, habitID, ok := habitRequestIDs(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.statsService.HabitStats(ctx, habitID, uid)
	if err != nil {
		writeServiceError(w, logger, "habit stats", hideForeignHabit(err))
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.statsService.UserStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "user stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
